package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (e *env) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change shell settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			data, err := json.MarshalIndent(svc.Settings.Get(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	var (
		theme, language string
		microphone      bool
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Change theme, language or microphone permission; omitted flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			current := svc.Settings.Get()
			if !cmd.Flags().Changed("theme") {
				theme = string(current.Theme)
			}
			if !cmd.Flags().Changed("language") {
				language = current.Language
			}
			if !cmd.Flags().Changed("microphone") {
				microphone = current.Permissions.Microphone
			}
			_, err = svc.Settings.Update(theme, language, microphone)
			return err
		},
	}
	set.Flags().StringVar(&theme, "theme", "", "light or dark")
	set.Flags().StringVar(&language, "language", "", "English or Français")
	set.Flags().BoolVar(&microphone, "microphone", false, "Allow microphone access")

	var reset bool
	folder := &cobra.Command{
		Use:   "favorites-folder [DIR]",
		Short: "Move favorites.json into DIR, or back to the data directory with --reset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset == (len(args) == 1) {
				return fmt.Errorf("give either DIR or --reset")
			}
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			dir := ""
			if !reset {
				dir = args[0]
			}
			_, err = svc.Settings.SetFavoritesFolder(dir)
			return err
		},
	}
	folder.Flags().BoolVar(&reset, "reset", false, "Store favorites in the data directory again")

	cmd.AddCommand(show, set, folder)
	return cmd
}
