package cli

import (
	"fmt"

	"github.com/alexanderramin/guardlog/internal/cli/formatter"
	"github.com/alexanderramin/guardlog/internal/contract"
	"github.com/alexanderramin/guardlog/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReportCmd(app *App, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Report both sleep strategies for a guard log",
		Long: `Parse a guard log, replay it in chronological order and report:
  - the first entries of the sorted log
  - a spot check of one guard at one minute
  - strategy 1: the guard asleep the most, at its most frequent minute
  - strategy 2: the guard asleep most often at any single minute

Reads stdin when no file (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := openSource(app, args, 0)
			if err != nil {
				return err
			}
			defer src.Close()

			req := contract.NewReportRequest()
			req.Source = src
			req.SourceName = name
			req.Head = app.Config.Report.Head
			req.SpotGuard = domain.GuardID(app.Config.Report.SpotGuard)
			req.SpotMinute = app.Config.Report.SpotMinute

			resp, err := app.Reports.BuildReport(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(resp))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("head", 5, "Number of sorted entries to preview (0 to hide)")
	flags.Uint32("spot-guard", 1201, "Guard id for the spot check")
	flags.Int("spot-minute", 16, "Minute of the hour for the spot check")
	bindFlags(v, flags, map[string]string{
		"head":        "report.head",
		"spot-guard":  "report.spot_guard",
		"spot-minute": "report.spot_minute",
	})

	return cmd
}
