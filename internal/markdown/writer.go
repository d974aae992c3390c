// Package markdown writes bookmarks into per-book markdown documents.
// Each book gets one append-only document named
// "<title> - <author>.md"; highlights in an existing document are
// separated by a horizontal rule.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/videbar/kobo-highlights/internal/entities"
)

// separator visually splits successive highlights in one document.
const separator = "\n\n***\n\n"

// AppendBookmark adds a bookmark to the markdown document of its book
// inside targetDir, creating the document if it does not exist yet.
// Existing content is never rewritten; the write is not transactional,
// so a crash mid-write can leave a partial entry at the end of the
// file.
func AppendBookmark(bm entities.Bookmark, targetDir string) error {
	path := filepath.Join(targetDir, bm.DocumentName())
	block := FormatBookmark(bm)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(block), 0644); err != nil {
			return fmt.Errorf("failed to create %q: %w", path, err)
		}
		return nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(separator + block); err != nil {
		return fmt.Errorf("failed to append to %q: %w", path, err)
	}
	return nil
}

// FormatBookmark renders a bookmark as markdown: the highlighted text
// as a blockquote, followed, if present, by the annotation as plain
// paragraphs underneath.
func FormatBookmark(bm entities.Bookmark) string {
	quoted := "> " + strings.ReplaceAll(bm.Text, "\n", "\n> ")

	if !bm.HasAnnotation() {
		return quoted
	}
	return quoted + "\n\n" + bm.Annotation
}
