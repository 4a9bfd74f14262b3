package main

import (
	"context"

	"banking-ledger/internal/dto"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/spf13/cobra"
)

func transactionCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "inspect transaction records",
	}

	var id, reference string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show one transaction by id or reference",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			var (
				txn *models.Transaction
				err error
			)
			switch {
			case id != "" && reference != "":
				return nil, apperrors.NewValidationError("use either --id or --reference")
			case id != "":
				var transactionID uint
				if transactionID, err = dto.ParseID("transaction_id", id); err != nil {
					return nil, err
				}
				txn, err = app.ledger.Accounts.GetTransaction(ctx, transactionID)
			default:
				txn, err = app.ledger.Accounts.GetTransactionByReference(ctx, reference)
			}
			if err != nil {
				return nil, err
			}
			return dto.NewTransactionResponse(txn), nil
		}),
	}
	showCmd.Flags().StringVar(&id, "id", "", "transaction id")
	showCmd.Flags().StringVar(&reference, "reference", "", "transaction reference")

	cmd.AddCommand(showCmd)
	return cmd
}
