// Package importer contains the import reconciliation logic: deciding
// which bookmarks from the ereader still need to be exported, writing
// them into the markdown documents and recording them in the import
// ledger.
package importer

import (
	"fmt"

	"github.com/videbar/kobo-highlights/internal/entities"
	"github.com/videbar/kobo-highlights/internal/ledger"
	"github.com/videbar/kobo-highlights/internal/markdown"
)

// Extractor provides the bookmarks currently on the ereader.
type Extractor interface {
	ExtractBookmarks() ([]entities.Bookmark, error)
}

// Importer runs import operations against one target directory and
// one ledger file.
type Importer struct {
	extractor  Extractor
	targetDir  string
	ledgerPath string
	confirm    func(prompt string) bool
}

// Summary describes what an import run did.
type Summary struct {
	Kind        SelectionKind
	ImportedIDs []string
}

// New creates an Importer that extracts bookmarks through extractor,
// writes documents into targetDir and tracks imported ids in the
// ledger at ledgerPath. confirm is consulted before a corrupt ledger
// is reset; a nil confirm never resets.
func New(extractor Extractor, targetDir, ledgerPath string, confirm func(prompt string) bool) *Importer {
	return &Importer{
		extractor:  extractor,
		targetDir:  targetDir,
		ledgerPath: ledgerPath,
		confirm:    confirm,
	}
}

// Run extracts the bookmarks, resolves the selector and imports the
// selected bookmarks in extraction order. Each bookmark is first
// written to its document and only then recorded in the ledger, so a
// failed write never marks a bookmark as imported. The first write or
// ledger failure halts the run; bookmarks imported before the failure
// stay recorded.
func (imp *Importer) Run(selector string) (Summary, error) {
	bookmarks, err := imp.extractor.ExtractBookmarks()
	if err != nil {
		return Summary{}, err
	}

	importedIDs, err := ledger.LoadOrReset(imp.ledgerPath, imp.confirm)
	if err != nil {
		return Summary{}, err
	}

	selection, err := ResolveSelection(bookmarks, importedIDs, selector)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Kind: selection.Kind}

	for _, bm := range selection.Bookmarks {
		if err := markdown.AppendBookmark(bm, imp.targetDir); err != nil {
			return summary, fmt.Errorf("failed to import bookmark %s: %w", bm.ID, err)
		}
		if err := ledger.Record(imp.ledgerPath, bm.ID); err != nil {
			return summary, err
		}
		summary.ImportedIDs = append(summary.ImportedIDs, bm.ID)
	}

	return summary, nil
}

// NewBookmarks extracts the bookmarks and returns those that are not
// recorded in the ledger yet, in extraction order. Used by the listing
// command.
func (imp *Importer) NewBookmarks() ([]entities.Bookmark, error) {
	bookmarks, err := imp.extractor.ExtractBookmarks()
	if err != nil {
		return nil, err
	}

	importedIDs, err := ledger.LoadOrReset(imp.ledgerPath, imp.confirm)
	if err != nil {
		return nil, err
	}

	selection, err := ResolveSelection(bookmarks, importedIDs, "new")
	if err != nil {
		return nil, err
	}
	return selection.Bookmarks, nil
}

// AllBookmarks extracts every bookmark on the ereader.
func (imp *Importer) AllBookmarks() ([]entities.Bookmark, error) {
	return imp.extractor.ExtractBookmarks()
}
