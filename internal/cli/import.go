package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/videbar/kobo-highlights/internal/importer"
	"github.com/videbar/kobo-highlights/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import [SELECTOR]",
	Short: "Import bookmarks from the ereader to the markdown documents",
	Long: `Import the bookmarks from the ereader to the markdown documents.

SELECTOR chooses which bookmarks to import. It can be "new" (the
default), "all", a bookmark id, a whitespace-separated list of
bookmark ids, a book title or a book author.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector := "new"
		if len(args) == 1 {
			selector = args[0]
		}

		cfg, err := setupConfig()
		if err != nil {
			return err
		}
		imp, err := newImporter(cfg)
		if err != nil {
			return err
		}

		summary, err := imp.Run(selector)
		if errors.Is(err, importer.ErrSelectionNotFound) {
			// Not fatal: report it and finish with nothing imported.
			fmt.Fprintf(os.Stderr, "%s does not identify a bookmark, try using --help to see the valid values.\n", selector)
			return nil
		}
		if err != nil {
			return err
		}

		reportImport(summary, selector)
		return nil
	},
}

func reportImport(summary importer.Summary, selector string) {
	switch summary.Kind {
	case importer.SelectionNew:
		fmt.Println("All new bookmarks have been imported.")
	case importer.SelectionAll:
		fmt.Println("All bookmarks have been imported.")
	case importer.SelectionIDList:
		fmt.Println("The following bookmarks have been imported:")
		fmt.Println(ui.Accent.Render(strings.Join(summary.ImportedIDs, "\n")))
	case importer.SelectionTitle:
		fmt.Printf("All bookmarks from the book %s have been imported.\n", ui.Accent.Render(selector))
	case importer.SelectionAuthor:
		fmt.Printf("All bookmarks from the author %s have been imported.\n", ui.Accent.Render(selector))
	}
}

func init() {
	rootCmd.AddCommand(importCmd)
}
