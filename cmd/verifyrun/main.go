// Command verifyrun evaluates verification checklists and inspects
// their journals.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/randalmurphal/verify/pkg/verify/checklist"
	"github.com/randalmurphal/verify/pkg/verify/journal"
	"github.com/randalmurphal/verify/pkg/verify/observe"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("Failure", "err", err)
		return err
	}

	return nil
}

func NewRootCmd(log *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "verifyrun SUBCOMMAND",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

		Long: `verifyrun evaluates verification checklists and inspects their journals.

A checklist is a YAML or JSON file of checks. Each check is captured and
evaluated with its operand values preserved, so outcomes read as

    verify(replicas >= 1) => verify(3 >= 1) => true

Runs can be journaled to memory or SQLite and inspected later with the
history and runs subcommands.
`,
	}

	rootCmd.AddCommand(
		newRunCmd(log),
		newHistoryCmd(log),
		newRunsCmd(log),
	)

	return rootCmd
}

const (
	journalFlag = "journal"
	dsnFlag     = "dsn"
	verboseFlag = "verbose"
)

// addJournalFlags registers the journal selection flags shared by
// subcommands that read or write a journal.
func addJournalFlags(fs *pflag.FlagSet, defaultDriver string) {
	fs.String(journalFlag, defaultDriver, "journal driver (memory|sqlite); empty disables the journal")
	fs.String(dsnFlag, "verify-journal.db", "journal data source name (sqlite database path)")
}

// openJournal opens the store selected by the journal flags.
func openJournal(fs *pflag.FlagSet) (journal.Store, error) {
	driver, _ := fs.GetString(journalFlag)
	if driver == "" {
		return nil, nil
	}
	dsn, _ := fs.GetString(dsnFlag)

	store, err := journal.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return store, nil
}

func newRunCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "run PATH_TO_CHECKLIST",

		Short: "Evaluate a checklist and print each outcome",

		Long: `run loads a checklist file, evaluates every check, and prints one line
per outcome. The exit status is non-zero when any check fails or errors.
`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fs := cmd.Flags()

			done := observe.TimedOperation()

			list, err := checklist.FromFile(args[0])
			if err != nil {
				return fmt.Errorf("load checklist: %w", err)
			}

			runLog := log
			if verbose, _ := fs.GetBool(verboseFlag); verbose {
				runLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}
			opts := []checklist.Option{checklist.WithLogger(runLog)}

			store, err := openJournal(fs)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
				opts = append(opts, checklist.WithJournal(store))
			}

			summary, err := checklist.NewEngine(opts...).Run(ctx, list)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			log.Info("checklist evaluated",
				"run_id", summary.RunID,
				"duration_ms", done(),
			)

			if !summary.OK() {
				return fmt.Errorf("%d of %d checks did not pass",
					summary.Failed+summary.Errored, summary.Total)
			}
			return nil
		},
	}

	addJournalFlags(cmd.Flags(), "")
	cmd.Flags().Bool(verboseFlag, false, "log each check as it evaluates")

	return cmd
}

func newHistoryCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "history RUN_ID",

		Short: "Print the journaled records of one run",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(cmd.Flags())
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("history requires a journal driver")
			}
			defer store.Close()

			recs, err := store.List(args[0])
			if errors.Is(err, journal.ErrNotFound) {
				return fmt.Errorf("run %s has no journaled records", args[0])
			}
			if err != nil {
				return fmt.Errorf("list records: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CREATED\tRESULT\tCHECK")
			for _, rec := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					rec.CreatedAt.Format(time.RFC3339),
					passLabel(rec.Value),
					recordLine(rec),
				)
			}
			return tw.Flush()
		},
	}

	addJournalFlags(cmd.Flags(), "sqlite")

	return cmd
}

func newRunsCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "runs",

		Short: "List journaled runs",

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(cmd.Flags())
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("runs requires a journal driver")
			}
			defer store.Close()

			infos, err := store.Runs()
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN ID\tRECORDS\tFIRST\tLAST")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
					info.RunID,
					info.Records,
					info.First.Format(time.RFC3339),
					info.Last.Format(time.RFC3339),
				)
			}
			return tw.Flush()
		},
	}

	addJournalFlags(cmd.Flags(), "sqlite")

	return cmd
}

// printSummary writes one line per outcome followed by the totals.
func printSummary(w io.Writer, summary checklist.Summary) {
	for _, o := range summary.Outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "ERROR %s: %v\n", o.Source, o.Err)
		case o.Passed:
			fmt.Fprintf(w, "PASS  %s\n", outcomeLine(o))
		default:
			fmt.Fprintf(w, "FAIL  %s\n", outcomeLine(o))
		}
	}
	fmt.Fprintf(w, "\n%s: %d checks, %d passed, %d failed, %d errored (%s)\n",
		summary.Name, summary.Total, summary.Passed, summary.Failed, summary.Errored,
		summary.Duration.Round(time.Millisecond))
}

// outcomeLine reconstructs the decomposed rendering for an outcome.
func outcomeLine(o checklist.Outcome) string {
	return decomposedLine(o.Source, o.Rendered, o.Passed, o.Negated)
}

// recordLine reconstructs the decomposed rendering for a journal record.
func recordLine(rec journal.Record) string {
	return decomposedLine(rec.Source, rec.Rendered, rec.Value, rec.Negated)
}

func passLabel(v bool) string {
	if v {
		return "PASS"
	}
	return "FAIL"
}

func decomposedLine(source, rendered string, value, negated bool) string {
	bang := ""
	if negated {
		bang = "!"
	}
	return fmt.Sprintf("%sverify(%s) => %sverify(%s) => %s",
		bang, source, bang, rendered, strconv.FormatBool(value))
}
