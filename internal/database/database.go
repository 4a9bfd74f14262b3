package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"banking-ledger/internal/config"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		dsn := cfg.DSN()
		if !strings.Contains(dsn, "?") {
			dsn += "?_foreign_keys=on&_busy_timeout=5000"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Driver returns the configured driver name
func (db *DB) Driver() string {
	if db.config == nil || db.config.Driver == "" {
		return config.DriverPostgres
	}
	return db.config.Driver
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Customer{},
		&models.Currency{},
		&models.Account{},
		&models.BankReserve{},
		&models.Loan{},
		&models.LoanRepayment{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// SeedLedger makes sure the reserve row and the home currency exist.
// Existing rows are left untouched, so running it twice is harmless.
func (db *DB) SeedLedger(ctx context.Context, homeCurrency string, initialReserve decimal.Decimal) (*models.BankReserve, error) {
	var reserve models.BankReserve
	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code := models.NormalizeCurrencyCode(homeCurrency)
		var currency models.Currency
		err := tx.Where("code = ?", code).First(&currency).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			currency = models.Currency{Code: code, ExchangeRate: decimal.NewFromInt(1)}
			if err := tx.Create(&currency).Error; err != nil {
				return fmt.Errorf("failed to seed home currency: %w", err)
			}
			log.Printf("Seeded home currency %s", code)
		} else if err != nil {
			return fmt.Errorf("failed to look up home currency: %w", err)
		}

		err = tx.First(&reserve, models.ReserveID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reserve = models.BankReserve{ID: models.ReserveID, Balance: initialReserve}
			if err := tx.Create(&reserve).Error; err != nil {
				return fmt.Errorf("failed to seed bank reserve: %w", err)
			}
			log.Printf("Seeded bank reserve with %s", initialReserve.StringFixed(models.MoneyScale))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up bank reserve: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reserve, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.migrate(cfg.Database.AutoMigrate); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Database initialized successfully")

	return db, nil
}

func (db *DB) migrate(enabled bool) error {
	if !enabled {
		log.Println("Auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	if db.Driver() == config.DriverSQLite {
		// The SQL migrations target Postgres; SQLite gets the schema from the models.
		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrations(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return nil
}

// Migrate applies the schema regardless of the AUTO_MIGRATE setting
func (db *DB) Migrate() error {
	return db.migrate(true)
}

// MigrationStatus reports the applied schema version. SQLite schemas come
// from the models and carry no version.
func (db *DB) MigrationStatus() (version uint, dirty bool, err error) {
	if db.Driver() == config.DriverSQLite {
		return 0, false, nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return NewMigrationRunner(sqlDB).GetMigrationStatus()
}

// Rollback reverts the most recent SQL migration
func (db *DB) Rollback() error {
	if db.Driver() == config.DriverSQLite {
		return errors.New("rollback is not supported for sqlite schemas")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return NewMigrationRunner(sqlDB).RollbackMigration()
}
