package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stemsi/registrar/internal/render"
	"github.com/stemsi/registrar/internal/service"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every summary to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			summary := service.NewReportService(repo).Summary()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create workbook: %w", err)
			}
			if err := render.WriteWorkbook(f, summary); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close workbook: %w", err)
			}

			opts.log.Info().Str("path", out).Msg("Workbook written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "report.xlsx", "Destination workbook path")
	return cmd
}
