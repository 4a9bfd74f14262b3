package main

import (
	"context"

	"banking-ledger/internal/dto"
	"banking-ledger/internal/models"
	"banking-ledger/internal/services"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type moneyOperation func(s services.AccountServiceInterface, ctx context.Context, accountID uint, amount decimal.Decimal, currencyCode string) (*models.AccountMutation, error)

func accountCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "open accounts and move money",
	}

	cmd.AddCommand(accountOpenCommand(app))
	cmd.AddCommand(accountShowCommand(app))
	cmd.AddCommand(accountBalanceCommand(app))
	cmd.AddCommand(accountMoneyCommand(app, "deposit", "credit an account", services.AccountServiceInterface.Deposit))
	cmd.AddCommand(accountMoneyCommand(app, "withdraw", "debit an account, fee included", services.AccountServiceInterface.Withdraw))
	cmd.AddCommand(accountTransferCommand(app))
	cmd.AddCommand(accountCloseCommand(app))
	cmd.AddCommand(accountHistoryCommand(app))
	cmd.AddCommand(accountFeesCommand(app))

	return cmd
}

func accountOpenCommand(app *ledgerApp) *cobra.Command {
	var req dto.OpenAccountRequest

	cmd := &cobra.Command{
		Use:   "open",
		Short: "open an account for a customer",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customerID, balance, err := req.Parse()
			if err != nil {
				return nil, err
			}
			account, err := app.ledger.Accounts.OpenAccount(ctx, customerID, balance)
			if err != nil {
				return nil, err
			}
			return dto.NewAccountResponse(account), nil
		}),
	}

	cmd.Flags().StringVar(&req.CustomerID, "customer", "", "owning customer id")
	cmd.Flags().StringVar(&req.OpeningBalance, "balance", "", "opening balance in the home currency")
	return cmd
}

func accountShowCommand(app *ledgerApp) *cobra.Command {
	var req dto.AccountRequest

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show an account",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			accountID, err := req.Parse()
			if err != nil {
				return nil, err
			}
			account, err := app.ledger.Accounts.GetAccount(ctx, accountID)
			if err != nil {
				return nil, err
			}
			return dto.NewAccountResponse(account), nil
		}),
	}

	cmd.Flags().StringVar(&req.AccountID, "id", "", "account id")
	return cmd
}

func accountBalanceCommand(app *ledgerApp) *cobra.Command {
	var req dto.AccountRequest

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "show the balance of an account",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			accountID, err := req.Parse()
			if err != nil {
				return nil, err
			}
			balance, err := app.ledger.Accounts.GetBalance(ctx, accountID)
			if err != nil {
				return nil, err
			}
			return dto.BalanceResponse{AccountID: accountID, Balance: balance.StringFixed(models.MoneyScale)}, nil
		}),
	}

	cmd.Flags().StringVar(&req.AccountID, "id", "", "account id")
	return cmd
}

func accountMoneyCommand(app *ledgerApp, use, short string, op moneyOperation) *cobra.Command {
	var req dto.MoneyRequest

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			accountID, amount, err := req.Parse()
			if err != nil {
				return nil, err
			}
			result, err := op(app.ledger.Accounts, ctx, accountID, amount, req.Currency)
			if err != nil {
				return nil, err
			}
			return dto.NewMutationResponse(result), nil
		}),
	}

	cmd.Flags().StringVar(&req.AccountID, "id", "", "account id")
	cmd.Flags().StringVar(&req.Amount, "amount", "", "amount in the given currency")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "currency code, the home currency when empty")
	return cmd
}

func accountTransferCommand(app *ledgerApp) *cobra.Command {
	var req dto.TransferRequest

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "move money between two accounts",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			from, to, amount, err := req.Parse()
			if err != nil {
				return nil, err
			}
			result, err := app.ledger.Accounts.Transfer(ctx, from, to, amount, req.Currency)
			if err != nil {
				return nil, err
			}
			return dto.NewTransferResponse(result), nil
		}),
	}

	cmd.Flags().StringVar(&req.FromAccountID, "from", "", "source account id")
	cmd.Flags().StringVar(&req.ToAccountID, "to", "", "target account id")
	cmd.Flags().StringVar(&req.Amount, "amount", "", "amount in the given currency")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "currency code, the home currency when empty")
	return cmd
}

func accountCloseCommand(app *ledgerApp) *cobra.Command {
	var req dto.AccountRequest

	cmd := &cobra.Command{
		Use:   "close",
		Short: "close an account",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			accountID, err := req.Parse()
			if err != nil {
				return nil, err
			}
			account, err := app.ledger.Accounts.Close(ctx, accountID)
			if err != nil {
				return nil, err
			}
			return dto.NewAccountResponse(account), nil
		}),
	}

	cmd.Flags().StringVar(&req.AccountID, "id", "", "account id")
	return cmd
}

func accountHistoryCommand(app *ledgerApp) *cobra.Command {
	var req dto.HistoryRequest

	cmd := &cobra.Command{
		Use:   "history",
		Short: "list the transactions of an account, newest first",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			accountID, err := req.Parse()
			if err != nil {
				return nil, err
			}
			txns, total, err := app.ledger.Accounts.ListAccountTransactions(ctx, accountID, req.Offset, req.Limit)
			if err != nil {
				return nil, err
			}
			return dto.NewTransactionListResponse(txns, total, req.Offset, req.Limit), nil
		}),
	}

	addHistoryFlags(cmd, &req, "account id")
	return cmd
}

func accountFeesCommand(app *ledgerApp) *cobra.Command {
	return &cobra.Command{
		Use:   "fees",
		Short: "show the fee income retained by the bank",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			total, err := app.ledger.Accounts.TotalFees(ctx)
			if err != nil {
				return nil, err
			}
			return dto.FeesResponse{TotalFees: total.StringFixed(models.MoneyScale)}, nil
		}),
	}
}
