package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/wire"
)

// UsageCmd returns the usage command
func UsageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Record and review token usage",
		Long:  `The token-usage ledger. Callers record counts and costs after the fact.`,
	}

	cmd.AddCommand(usageRecordCmd())
	cmd.AddCommand(usageListCmd())

	return cmd
}

func usageRecordCmd() *cobra.Command {
	var projectID, conversationID, model string
	var inputTokens, outputTokens int
	var cost float64

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a token-usage entry",
		Long: `Record a token-usage entry. Project and conversation references are
optional.

Examples:
  pmide usage record --model claude-3 --input 1200 --output 800 --cost 0.04`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			usage, err := wire.UsageService().RecordUsage(ctx, primary.RecordUsageRequest{
				ProjectID:      projectID,
				ConversationID: conversationID,
				Model:          model,
				InputTokens:    inputTokens,
				OutputTokens:   outputTokens,
				Cost:           cost,
			})
			if err != nil {
				return fmt.Errorf("failed to record usage: %w", err)
			}

			fmt.Printf("✓ Recorded usage %s: %d in / %d out\n", usage.ID, usage.InputTokens, usage.OutputTokens)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id")
	cmd.Flags().StringVar(&conversationID, "conversation", "", "Conversation id")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model name (required)")
	cmd.Flags().IntVar(&inputTokens, "input", 0, "Input token count")
	cmd.Flags().IntVar(&outputTokens, "output", 0, "Output token count")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost in dollars")
	cmd.MarkFlagRequired("model")

	return cmd
}

func usageListCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List usage entries, newest first",
		Long: `List token-usage entries, optionally bounded by RFC3339 timestamps.

Examples:
  pmide usage list
  pmide usage list --from 2026-08-01T00:00:00Z --to 2026-08-31T23:59:59Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := wire.UsageService().ListUsage(ctx, from, to)
			if err != nil {
				return fmt.Errorf("failed to list usage: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No usage recorded.")
				return nil
			}

			var totalIn, totalOut int
			var totalCost float64

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "WHEN\tMODEL\tIN\tOUT\tCOST")
			fmt.Fprintln(w, "----\t-----\t--\t---\t----")
			for _, u := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t$%.4f\n", u.CreatedAt, u.Model, u.InputTokens, u.OutputTokens, u.Cost)
				totalIn += u.InputTokens
				totalOut += u.OutputTokens
				totalCost += u.Cost
			}
			w.Flush()

			fmt.Println()
			fmt.Printf("Total: %d in / %d out, %s\n",
				totalIn, totalOut, color.New(color.FgHiGreen).Sprintf("$%.4f", totalCost))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Lower bound (RFC3339)")
	cmd.Flags().StringVar(&to, "to", "", "Upper bound (RFC3339)")

	return cmd
}
