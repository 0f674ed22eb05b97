package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"phototime/internal/config"
	"phototime/internal/journal"
	"phototime/internal/match"
	"phototime/internal/pipeline"
	"phototime/internal/preflight"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var recursive bool
	var copyMatched bool
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "run <directory>",
		Short: "Match sidecar metadata and rewrite media file timestamps",
		Long: `Run reconciles every JSON sidecar in the directory with its media file by
exact filename and rewrites the file's timestamps to the recorded capture
time. Missing media files are skipped; per-file write failures are reported
at the end without stopping the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Rejected before config, preflight, and journal open so an
			// unsupported request does no filesystem work at all.
			// Runner.Start enforces the same contract for library callers.
			if recursive {
				return pipeline.ErrUnimplemented
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if check := preflight.CheckDirectory(dir); !check.Passed {
				return fmt.Errorf("%s: %s", check.Name, check.Detail)
			}

			jrnl, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer jrnl.Close()

			runner := pipeline.NewRunner(cfg, jrnl, logger)
			handle, err := runner.Start(cmd.Context(), pipeline.Options{
				Directory:   dir,
				Recursive:   recursive,
				CopyMatched: copyMatched,
			})
			if err != nil {
				return err
			}

			consumeProgress(cmd.OutOrStdout(), handle.Progress, noProgress)

			result, runErr := handle.Wait()
			if runErr != nil {
				return runErr
			}

			printRunSummary(cmd, result)
			if result.Counts.Failed > 0 {
				return fmt.Errorf("%d of %d files failed", result.Counts.Failed, result.Counts.Records)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "Also search subdirectories (not yet implemented)")
	cmd.Flags().BoolVar(&copyMatched, "copy", false, "Reserved: copy matched files to a new folder (currently no effect)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the interactive progress bar")

	return cmd
}

func printRunSummary(cmd *cobra.Command, result pipeline.Result) {
	rows := [][]string{
		{outcomeLabel(string(match.OutcomeWritten)), strconv.Itoa(result.Counts.Written)},
		{outcomeLabel(string(match.OutcomeSkipped)), strconv.Itoa(result.Counts.Skipped)},
		{outcomeLabel(string(match.OutcomeFailed)), strconv.Itoa(result.Counts.Failed)},
	}
	cmd.Println(renderTable([]string{"Outcome", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))

	for _, file := range result.Files {
		if file.Outcome != match.OutcomeFailed {
			continue
		}
		cmd.PrintErrf("failed: %s: %s\n", file.Title, file.Detail())
	}
}
