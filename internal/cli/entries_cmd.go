package cli

import (
	"fmt"

	"github.com/alexanderramin/guardlog/internal/cli/formatter"
	"github.com/alexanderramin/guardlog/internal/contract"
	"github.com/spf13/cobra"
)

func newEntriesCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "entries [file]",
		Short: "List log entries in chronological order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0, got %d", limit)
			}

			src, name, err := openSource(app, args, 0)
			if err != nil {
				return err
			}
			defer src.Close()

			resp, err := app.Reports.ListEntries(cmd.Context(), contract.EntriesRequest{
				Source:     src,
				SourceName: name,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntries(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries (0 for all)")

	return cmd
}
