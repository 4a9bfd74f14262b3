package main

import (
	"context"

	"banking-ledger/internal/dto"

	"github.com/spf13/cobra"
)

type migrationStatus struct {
	Driver  string `json:"driver"`
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
}

func migrateCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "manage the ledger schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			if err := app.db.Migrate(); err != nil {
				return nil, err
			}
			return app.migrationStatus()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "revert the most recent migration",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			if err := app.db.Rollback(); err != nil {
				return nil, err
			}
			return app.migrationStatus()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "show the applied schema version",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			return app.migrationStatus()
		}),
	})

	return cmd
}

func (a *ledgerApp) migrationStatus() (*migrationStatus, error) {
	version, dirty, err := a.db.MigrationStatus()
	if err != nil {
		return nil, err
	}
	return &migrationStatus{Driver: a.db.Driver(), Version: version, Dirty: dirty}, nil
}

func seedCommand(app *ledgerApp) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "create the home currency and the bank reserve if missing",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			reserve, err := app.db.SeedLedger(ctx, app.cfg.Ledger.HomeCurrency, app.cfg.Ledger.InitialReserve)
			if err != nil {
				return nil, err
			}
			return dto.NewReserveResponse(reserve), nil
		}),
	}
}
