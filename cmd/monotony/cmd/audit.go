package cmd

import (
	"fmt"
	"strconv"

	"github.com/scarybot/monotony/ledger"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Query the transaction audit trail",
	Long: `Query and display transaction records from a SQLite journal.

Subcommands:
  tx      - Get details of a specific transaction by ID
  run     - List all transactions of a run
  netflow - Net money flow for an account within a run

Examples:
  monotony audit tx <transaction-id>
  monotony audit run real
  monotony audit netflow real 2`,
}

var auditTxCmd = &cobra.Command{
	Use:   "tx <transaction-id>",
	Short: "Get details of a specific transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditTx,
}

var auditRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "List all transactions of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditRun,
}

var auditNetFlowCmd = &cobra.Command{
	Use:   "netflow <run-id> <account-id>",
	Short: "Net money flow for an account within a run",
	Args:  cobra.ExactArgs(2),
	RunE:  runAuditNetFlow,
}

var auditDBPath string

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditTxCmd)
	auditCmd.AddCommand(auditRunCmd)
	auditCmd.AddCommand(auditNetFlowCmd)

	auditCmd.PersistentFlags().StringVarP(&auditDBPath, "db", "d", "./monotony.sqlite", "path to SQLite journal DB")
}

func runAuditTx(cmd *cobra.Command, args []string) error {
	j, err := ledger.NewSQLite(auditDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	t, err := j.GetTransaction(args[0])
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}

	printTransaction(t)
	return nil
}

func runAuditRun(cmd *cobra.Command, args []string) error {
	j, err := ledger.NewSQLite(auditDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	ts, err := j.ListByRun(args[0])
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}

	for _, t := range ts {
		printTransaction(t)
	}
	fmt.Printf("%d transactions\n", len(ts))
	return nil
}

func runAuditNetFlow(cmd *cobra.Command, args []string) error {
	j, err := ledger.NewSQLite(auditDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	account, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("account id must be an integer: %w", err)
	}

	net, err := j.NetFlow(args[0], ledger.AccountID(account))
	if err != nil {
		return fmt.Errorf("query net flow: %w", err)
	}

	fmt.Printf("Net flow for account %d in run %q: £%d\n", account, args[0], net)
	return nil
}

func printTransaction(t ledger.Transaction) {
	flags := ""
	if !t.Completed {
		flags += " PARTIAL"
	}
	if t.Reversed {
		flags += " REVERSED"
	}
	if t.Simulation {
		flags += " SIM"
	}
	fmt.Printf("%s  run=%s  %d -> %d  £%d/£%d  %q%s\n",
		t.ID, t.RunID, t.From, t.To, t.Paid, t.Requested, t.Reason, flags)
}
