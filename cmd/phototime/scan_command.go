package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"phototime/internal/config"
	"phototime/internal/preflight"
	"phototime/internal/sidecar"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "List sidecar metadata without touching any media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
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

			paths, err := sidecar.Discover(dir, cfg.Sidecar.Extension)
			if err != nil {
				return err
			}
			records, err := sidecar.ExtractAll(paths)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					record.Title,
					record.CaptureTime().Format(time.RFC3339),
				})
			}
			cmd.Println(renderTable([]string{"Title", "Capture Time"}, rows, nil))
			cmd.Printf("%d sidecars\n", len(records))
			return nil
		},
	}
	return cmd
}
