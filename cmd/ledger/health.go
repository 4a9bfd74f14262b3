package main

import (
	"context"

	apperrors "banking-ledger/internal/errors"

	"github.com/spf13/cobra"
)

type healthResponse struct {
	Database string `json:"database"`
	Driver   string `json:"driver"`
	Home     string `json:"home_currency"`
}

func healthCommand(app *ledgerApp) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "check that the database answers",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			if err := app.db.HealthCheck(); err != nil {
				return nil, apperrors.New(apperrors.SystemDatabaseError, apperrors.WithCause(err))
			}
			return healthResponse{
				Database: "ok",
				Driver:   app.cfg.Database.Driver,
				Home:     app.ledger.Currencies.HomeCurrency(),
			}, nil
		}),
	}
}
