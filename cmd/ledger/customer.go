package main

import (
	"context"

	"banking-ledger/internal/dto"

	"github.com/spf13/cobra"
)

func customerCommands(app *ledgerApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "register and inspect customers",
	}

	cmd.AddCommand(customerCreateCommand(app))
	cmd.AddCommand(customerShowCommand(app))
	cmd.AddCommand(customerFindCommand(app))
	cmd.AddCommand(customerListCommand(app))
	cmd.AddCommand(customerUpdateCommand(app))
	cmd.AddCommand(customerAccountsCommand(app))
	cmd.AddCommand(customerHistoryCommand(app))

	return cmd
}

func customerCreateCommand(app *ledgerApp) *cobra.Command {
	var req dto.CreateCustomerRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "register a customer",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			customer, err := app.ledger.Customers.CreateCustomer(ctx, req.IdentityRef, req.Phone, req.Address)
			if err != nil {
				return nil, err
			}
			return dto.NewCustomerResponse(customer), nil
		}),
	}

	cmd.Flags().StringVar(&req.IdentityRef, "identity", "", "external identity reference")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.Address, "address", "", "postal address")
	return cmd
}

func customerShowCommand(app *ledgerApp) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show a customer",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customerID, err := dto.ParseID("customer_id", id)
			if err != nil {
				return nil, err
			}
			customer, err := app.ledger.Customers.GetCustomer(ctx, customerID)
			if err != nil {
				return nil, err
			}
			return dto.NewCustomerResponse(customer), nil
		}),
	}

	cmd.Flags().StringVar(&id, "id", "", "customer id")
	return cmd
}

func customerFindCommand(app *ledgerApp) *cobra.Command {
	var identity string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "look a customer up by identity reference",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customer, err := app.ledger.Customers.FindCustomer(ctx, identity)
			if err != nil {
				return nil, err
			}
			return dto.NewCustomerResponse(customer), nil
		}),
	}

	cmd.Flags().StringVar(&identity, "identity", "", "external identity reference")
	return cmd
}

func customerListCommand(app *ledgerApp) *cobra.Command {
	var req dto.ListRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list registered customers",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			customers, total, err := app.ledger.Customers.ListCustomers(ctx, req.Offset, req.Limit)
			if err != nil {
				return nil, err
			}
			return dto.NewCustomerListResponse(customers, total, req.Offset, req.Limit), nil
		}),
	}

	cmd.Flags().IntVar(&req.Offset, "offset", 0, "number of records to skip")
	cmd.Flags().IntVar(&req.Limit, "limit", 50, "page size")
	return cmd
}

func customerUpdateCommand(app *ledgerApp) *cobra.Command {
	var req dto.UpdateContactRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "replace a customer's contact details",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customerID, err := req.Parse()
			if err != nil {
				return nil, err
			}
			customer, err := app.ledger.Customers.UpdateContact(ctx, customerID, req.Phone, req.Address)
			if err != nil {
				return nil, err
			}
			return dto.NewCustomerResponse(customer), nil
		}),
	}

	cmd.Flags().StringVar(&req.CustomerID, "id", "", "customer id")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.Address, "address", "", "postal address")
	return cmd
}

func customerAccountsCommand(app *ledgerApp) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "list a customer's accounts",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customerID, err := dto.ParseID("customer_id", id)
			if err != nil {
				return nil, err
			}
			accounts, err := app.ledger.Accounts.ListCustomerAccounts(ctx, customerID)
			if err != nil {
				return nil, err
			}
			return dto.NewAccountListResponse(accounts), nil
		}),
	}

	cmd.Flags().StringVar(&id, "id", "", "customer id")
	return cmd
}

func customerHistoryCommand(app *ledgerApp) *cobra.Command {
	var req dto.HistoryRequest

	cmd := &cobra.Command{
		Use:   "history",
		Short: "list the transactions of every account of a customer",
		Args:  cobra.NoArgs,
		RunE: app.run(func(ctx context.Context) (interface{}, error) {
			customerID, err := req.Parse()
			if err != nil {
				return nil, err
			}
			txns, total, err := app.ledger.Accounts.ListCustomerTransactions(ctx, customerID, req.Offset, req.Limit)
			if err != nil {
				return nil, err
			}
			return dto.NewTransactionListResponse(txns, total, req.Offset, req.Limit), nil
		}),
	}

	addHistoryFlags(cmd, &req, "customer id")
	return cmd
}

func addHistoryFlags(cmd *cobra.Command, req *dto.HistoryRequest, idUsage string) {
	cmd.Flags().StringVar(&req.ID, "id", "", idUsage)
	cmd.Flags().IntVar(&req.Offset, "offset", 0, "number of records to skip")
	cmd.Flags().IntVar(&req.Limit, "limit", 50, "page size")
}
