package main

import (
	"context"

	"banking-ledger/internal/dto"

	"github.com/spf13/cobra"
)

func loanCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "grant and repay loans from the bank reserve",
	}

	var grant dto.GrantLoanRequest
	grantCmd := &cobra.Command{
		Use:   "grant",
		Short: "grant a loan",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customerID, principal, accountID, err := grant.Parse()
			if err != nil {
				return nil, err
			}
			result, err := app.ledger.Loans.GrantLoan(ctx, customerID, principal, accountID)
			if err != nil {
				return nil, err
			}
			return dto.NewLoanGrantResponse(result), nil
		}),
	}
	grantCmd.Flags().StringVar(&grant.CustomerID, "customer", "", "borrowing customer id")
	grantCmd.Flags().StringVar(&grant.Principal, "principal", "", "principal in the home currency")
	grantCmd.Flags().StringVar(&grant.DisbursementAccountID, "account", "", "customer account credited with the principal")

	var repay dto.RepayLoanRequest
	repayCmd := &cobra.Command{
		Use:   "repay",
		Short: "pay an amount off a loan",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			loanID, amount, err := repay.Parse()
			if err != nil {
				return nil, err
			}
			result, err := app.ledger.Loans.RepayLoan(ctx, loanID, amount)
			if err != nil {
				return nil, err
			}
			return dto.NewLoanRepaymentResponse(result), nil
		}),
	}
	repayCmd.Flags().StringVar(&repay.LoanID, "id", "", "loan id")
	repayCmd.Flags().StringVar(&repay.Amount, "amount", "", "repayment in the home currency")

	var loanID string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show a loan",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			id, err := dto.ParseID("loan_id", loanID)
			if err != nil {
				return nil, err
			}
			loan, err := app.ledger.Loans.GetLoan(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.NewLoanResponse(loan), nil
		}),
	}
	showCmd.Flags().StringVar(&loanID, "id", "", "loan id")

	var customerID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list a customer's loans",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			id, err := dto.ParseID("customer_id", customerID)
			if err != nil {
				return nil, err
			}
			loans, err := app.ledger.Loans.ListCustomerLoans(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.NewLoanListResponse(loans), nil
		}),
	}
	listCmd.Flags().StringVar(&customerID, "customer", "", "customer id")

	var repaymentsLoanID string
	repaymentsCmd := &cobra.Command{
		Use:   "repayments",
		Short: "list the repayments of a loan",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			id, err := dto.ParseID("loan_id", repaymentsLoanID)
			if err != nil {
				return nil, err
			}
			repayments, err := app.ledger.Loans.ListRepayments(ctx, id)
			if err != nil {
				return nil, err
			}
			return dto.NewRepaymentListResponse(repayments), nil
		}),
	}
	repaymentsCmd.Flags().StringVar(&repaymentsLoanID, "id", "", "loan id")

	cmd.AddCommand(grantCmd, repayCmd, showCmd, listCmd, repaymentsCmd)
	return cmd
}

func reserveCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "inspect the bank reserve",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "show the reserve balance",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			reserve, err := app.ledger.Loans.GetReserve(ctx)
			if err != nil {
				return nil, err
			}
			return dto.NewReserveResponse(reserve), nil
		}),
	})

	return cmd
}
