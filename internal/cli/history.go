package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (e *env) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear browsing history",
	}

	var (
		limit  int
		search string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "Print visits, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeFn()

			entries, err := svc.History.Search(search, limit)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", entry.VisitedAt.Local().Format(time.DateTime), entry.URL, entry.Title)
			}
			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries")
	list.Flags().StringVarP(&search, "search", "s", "", "Only entries whose URL or title contains this text")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeFn()
			return svc.History.Clear()
		},
	}

	cmd.AddCommand(list, clearCmd)
	return cmd
}
