package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/guardlog/internal/cli/formatter"
	"github.com/alexanderramin/guardlog/internal/contract"
	"github.com/alexanderramin/guardlog/internal/domain"
	"github.com/spf13/cobra"
)

func newGuardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "guard <id> [file]",
		Short: "Show one guard's sleep totals and minute histogram",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid guard id %q", args[0])
			}

			src, name, err := openSource(app, args, 1)
			if err != nil {
				return err
			}
			defer src.Close()

			resp, err := app.Reports.GuardDetail(cmd.Context(), contract.GuardRequest{
				Source:     src,
				SourceName: name,
				Guard:      domain.GuardID(id),
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGuardDetail(resp))
			return nil
		},
	}
}
