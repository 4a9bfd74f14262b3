package database

import (
	"fmt"
	"path/filepath"
	"testing"

	"banking-ledger/internal/config"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the ledger schema.
// The pool is pinned to one connection: every new connection to ":memory:"
// would otherwise see its own empty database. Goroutines sharing it queue for
// that connection, so it never sees lock contention.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()
	return openTestDB(t, ":memory:", 1)
}

// SetupFileTestDB opens a WAL SQLite file under t.TempDir() with up to conns
// pooled connections. Every transaction begins IMMEDIATE, so concurrent
// writers contend for the database write lock and a writer that outwaits
// the short busy timeout gets SQLITE_BUSY back.
func SetupFileTestDB(t *testing.T, conns int) *DB {
	t.Helper()

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_txlock=immediate&_busy_timeout=50",
		filepath.Join(t.TempDir(), "ledger.db"))
	return openTestDB(t, dsn, conns)
}

func openTestDB(t *testing.T, dsn string, conns int) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(conns)
	sqlDB.SetMaxIdleConns(conns)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: conns,
			MaxIdleConns:   conns,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestCustomer inserts a customer with the given identity reference
func CreateTestCustomer(t *testing.T, db *DB, identityRef string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		IdentityRef: identityRef,
		Phone:       "+972500000000",
		Address:     "1 Ledger St",
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

// CreateTestAccount opens an account for the customer with a starting balance
func CreateTestAccount(t *testing.T, db *DB, customerID uint, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		CustomerID: customerID,
		Balance:    balance,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestCurrency registers a currency rate
func CreateTestCurrency(t *testing.T, db *DB, code string, rate decimal.Decimal) *models.Currency {
	t.Helper()

	currency := &models.Currency{Code: code, ExchangeRate: rate}
	if err := db.Create(currency).Error; err != nil {
		t.Fatalf("failed to create test currency: %v", err)
	}

	return currency
}

// CreateTestReserve creates the bank reserve row
func CreateTestReserve(t *testing.T, db *DB, balance decimal.Decimal) *models.BankReserve {
	t.Helper()

	reserve := &models.BankReserve{ID: models.ReserveID, Balance: balance}
	if err := db.Create(reserve).Error; err != nil {
		t.Fatalf("failed to create test reserve: %v", err)
	}

	return reserve
}
