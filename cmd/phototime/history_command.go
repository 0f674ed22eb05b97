package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"phototime/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show past runs, or the per-file outcomes of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			jrnl, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer jrnl.Close()

			if len(args) == 1 {
				return printRunFiles(cmd, jrnl, args[0])
			}
			return printRuns(cmd, jrnl, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")

	return cmd
}

func printRuns(cmd *cobra.Command, jrnl *journal.Journal, limit int) error {
	runs, err := jrnl.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			run.Directory,
			outcomeLabel(string(run.Status)),
			strconv.Itoa(run.Counts.Written),
			strconv.Itoa(run.Counts.Skipped),
			strconv.Itoa(run.Counts.Failed),
			run.Error,
		})
	}
	headers := []string{"Run", "Started", "Directory", "Status", "Written", "Skipped", "Failed", "Error"}
	aligns := []columnAlignment{
		alignLeft, alignLeft, alignLeft, alignLeft,
		alignRight, alignRight, alignRight, alignLeft,
	}
	cmd.Println(renderTable(headers, rows, aligns))
	return nil
}

func printRunFiles(cmd *cobra.Command, jrnl *journal.Journal, runID string) error {
	files, err := jrnl.FilesForRun(cmd.Context(), runID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(files))
	for _, file := range files {
		rows = append(rows, []string{
			strconv.Itoa(file.Position + 1),
			file.Title,
			outcomeLabel(file.Outcome),
			file.Detail,
		})
	}
	headers := []string{"#", "Title", "Outcome", "Detail"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}
	cmd.Println(renderTable(headers, rows, aligns))
	return nil
}
