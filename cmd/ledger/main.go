package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// CLI is the ledger operator tool
type CLI struct {
	cmd *cobra.Command
}

// NewCLI builds the command tree writing results to out and errors to errOut
func NewCLI(out, errOut io.Writer) *CLI {
	app := &ledgerApp{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "ledger",
		Short:         "Banking ledger operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&app.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&app.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file on exit")

	rootCmd.PersistentPreRunE = app.preRun
	rootCmd.PersistentPostRunE = app.postRun

	rootCmd.AddCommand(migrateCommands(app))
	rootCmd.AddCommand(seedCommand(app))
	rootCmd.AddCommand(customerCommands(app))
	rootCmd.AddCommand(currencyCommands(app))
	rootCmd.AddCommand(accountCommands(app))
	rootCmd.AddCommand(loanCommands(app))
	rootCmd.AddCommand(reserveCommands(app))
	rootCmd.AddCommand(transactionCommands(app))
	rootCmd.AddCommand(healthCommand(app))

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	return &CLI{cmd: rootCmd}
}

// Execute runs the command line in args
func (c *CLI) Execute(args []string) error {
	c.cmd.SetArgs(args)
	return c.cmd.Execute()
}

func recoverPanic() {
	if rec := recover(); rec != nil {
		log.Printf("panic: %v", rec)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI(os.Stdout, os.Stderr)
	if err := cli.Execute(os.Args[1:]); err != nil {
		if !reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
