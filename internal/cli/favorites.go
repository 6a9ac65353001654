package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"navshell/internal/utils"
)

func (e *env) favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List and edit favorites",
	}

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Print every folder and its URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(svc.Favorites.Get(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, folder := range svc.Favorites.List() {
				fmt.Fprintln(out, folder.Name)
				for _, url := range folder.URLs {
					fmt.Fprintf(out, "  %s\n", url)
				}
			}
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "Print the favorites record as JSON")

	addFolder := &cobra.Command{
		Use:   "add-folder NAME",
		Short: "Create an empty folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()
			return svc.Favorites.AddFolder(args[0])
		},
	}

	addURL := &cobra.Command{
		Use:   "add-url FOLDER URL",
		Short: "Append a URL to a folder, creating the folder if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()
			return svc.Favorites.AddURL(args[0], args[1])
		},
	}

	deleteURL := &cobra.Command{
		Use:   "delete-url FOLDER URL",
		Short: "Remove the first matching URL; an emptied folder is removed too",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()
			return svc.Favorites.DeleteURL(args[0], args[1])
		},
	}

	deleteFolder := &cobra.Command{
		Use:   "delete-folder FOLDER",
		Short: "Remove a folder and all its URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()
			return svc.Favorites.DeleteFolder(args[0])
		},
	}

	importCmd := &cobra.Command{
		Use:   "import FOLDER FILE",
		Short: "Append every URL listed in FILE (one per line, # comments) to FOLDER",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := utils.ReadNonEmptyLines(args[1])
			if err != nil {
				return err
			}
			svc, closeFn, err := e.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			for _, url := range urls {
				if err := svc.Favorites.AddURL(args[0], url); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d URLs into %s\n", len(urls), args[0])
			return nil
		},
	}

	cmd.AddCommand(list, addFolder, addURL, deleteURL, deleteFolder, importCmd)
	return cmd
}
