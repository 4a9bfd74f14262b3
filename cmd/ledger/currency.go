package main

import (
	"context"

	"banking-ledger/internal/dto"

	"github.com/spf13/cobra"
)

func currencyCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "manage exchange rates",
	}

	var req dto.SetRateRequest
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "register a currency or update its rate",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			rate, err := req.Parse()
			if err != nil {
				return nil, err
			}
			currency, err := app.ledger.Currencies.SetRate(ctx, req.Code, rate)
			if err != nil {
				return nil, err
			}
			return dto.NewCurrencyResponse(currency), nil
		}),
	}
	setCmd.Flags().StringVar(&req.Code, "code", "", "three letter currency code")
	setCmd.Flags().StringVar(&req.Rate, "rate", "", "home currency units per unit of the currency")

	var code string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show one currency",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			currency, err := app.ledger.Currencies.Resolve(ctx, code)
			if err != nil {
				return nil, err
			}
			return dto.NewCurrencyResponse(currency), nil
		}),
	}
	showCmd.Flags().StringVar(&code, "code", "", "currency code, the home currency when empty")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list every registered currency",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			currencies, err := app.ledger.Currencies.List(ctx)
			if err != nil {
				return nil, err
			}
			return dto.NewCurrencyListResponse(currencies, app.ledger.Currencies.HomeCurrency()), nil
		}),
	}

	cmd.AddCommand(setCmd, showCmd, listCmd)
	return cmd
}
