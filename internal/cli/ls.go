package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videbar/kobo-highlights/internal/entities"
	"github.com/videbar/kobo-highlights/internal/ui"
)

var lsAll bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Print the bookmarks stored in the ereader",
	Long: `Print the bookmarks stored in the ereader.

By default only new bookmarks are printed; with --all every bookmark
in the ereader is shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupConfig()
		if err != nil {
			return err
		}
		imp, err := newImporter(cfg)
		if err != nil {
			return err
		}

		var bookmarks []entities.Bookmark
		title := "New bookmarks in your ereader"
		if lsAll {
			bookmarks, err = imp.AllBookmarks()
			title = "All bookmarks in your ereader"
		} else {
			bookmarks, err = imp.NewBookmarks()
		}
		if err != nil {
			return err
		}

		if len(bookmarks) == 0 {
			fmt.Println(`No bookmarks to show (you can use "kobo-highlights ls --all" to print all bookmarks)`)
			return nil
		}

		fmt.Print(ui.BookmarkTable(title, bookmarks))
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolVar(&lsAll, "all", false, "show all bookmarks, not only new ones")
	rootCmd.AddCommand(lsCmd)
}
