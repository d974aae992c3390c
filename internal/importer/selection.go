package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/videbar/kobo-highlights/internal/entities"
)

// ErrSelectionNotFound is returned when a selector matches no bookmark
// id, book title or author.
var ErrSelectionNotFound = errors.New("selection does not identify any bookmark")

// SelectionKind tells how a selector string was interpreted.
type SelectionKind int

const (
	// SelectionNew keeps bookmarks whose id is not in the ledger.
	SelectionNew SelectionKind = iota
	// SelectionAll keeps every extracted bookmark.
	SelectionAll
	// SelectionIDList keeps bookmarks from an explicit id list.
	SelectionIDList
	// SelectionTitle keeps all bookmarks of one book title.
	SelectionTitle
	// SelectionAuthor keeps all bookmarks of one author.
	SelectionAuthor
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionNew:
		return "new"
	case SelectionAll:
		return "all"
	case SelectionIDList:
		return "id list"
	case SelectionTitle:
		return "title"
	case SelectionAuthor:
		return "author"
	default:
		return "unknown"
	}
}

// Selection is the resolved subset of bookmarks an import run will
// process, in extraction order.
type Selection struct {
	Kind      SelectionKind
	Bookmarks []entities.Bookmark
}

// ResolveSelection interprets a selector against the extracted
// bookmarks and the ids already recorded in the ledger. The selector
// is classified once, first match wins: "new", "all", a
// whitespace-separated list of bookmark ids, an exact book title, and
// finally an exact author. Id lists are checked before titles and
// authors so a title that happens to look like an id cannot shadow an
// explicit id selection.
//
// The function is pure: identical inputs always produce the same
// selection, and the extraction order of the bookmarks is preserved.
func ResolveSelection(bookmarks []entities.Bookmark, importedIDs []string, selector string) (Selection, error) {
	switch selector {
	case "new":
		imported := make(map[string]struct{}, len(importedIDs))
		for _, id := range importedIDs {
			imported[id] = struct{}{}
		}
		return Selection{Kind: SelectionNew, Bookmarks: filter(bookmarks, func(bm entities.Bookmark) bool {
			_, done := imported[bm.ID]
			return !done
		})}, nil

	case "all":
		return Selection{Kind: SelectionAll, Bookmarks: filter(bookmarks, nil)}, nil
	}

	knownIDs := make(map[string]struct{}, len(bookmarks))
	for _, bm := range bookmarks {
		knownIDs[bm.ID] = struct{}{}
	}

	if tokens := strings.Fields(selector); len(tokens) > 0 && allKnown(tokens, knownIDs) {
		wanted := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			wanted[token] = struct{}{}
		}
		return Selection{Kind: SelectionIDList, Bookmarks: filter(bookmarks, func(bm entities.Bookmark) bool {
			_, ok := wanted[bm.ID]
			return ok
		})}, nil
	}

	if matchesAny(bookmarks, func(bm entities.Bookmark) string { return bm.Title }, selector) {
		return Selection{Kind: SelectionTitle, Bookmarks: filter(bookmarks, func(bm entities.Bookmark) bool {
			return bm.Title == selector
		})}, nil
	}

	if matchesAny(bookmarks, func(bm entities.Bookmark) string { return bm.Author }, selector) {
		return Selection{Kind: SelectionAuthor, Bookmarks: filter(bookmarks, func(bm entities.Bookmark) bool {
			return bm.Author == selector
		})}, nil
	}

	return Selection{}, fmt.Errorf("%w: %q", ErrSelectionNotFound, selector)
}

func allKnown(tokens []string, known map[string]struct{}) bool {
	for _, token := range tokens {
		if _, ok := known[token]; !ok {
			return false
		}
	}
	return true
}

func matchesAny(bookmarks []entities.Bookmark, field func(entities.Bookmark) string, value string) bool {
	for _, bm := range bookmarks {
		if field(bm) == value {
			return true
		}
	}
	return false
}

// filter returns the bookmarks for which keep is true, preserving
// order. A nil predicate keeps everything.
func filter(bookmarks []entities.Bookmark, keep func(entities.Bookmark) bool) []entities.Bookmark {
	selected := make([]entities.Bookmark, 0, len(bookmarks))
	for _, bm := range bookmarks {
		if keep == nil || keep(bm) {
			selected = append(selected, bm)
		}
	}
	return selected
}
