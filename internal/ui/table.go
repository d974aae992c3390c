package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/videbar/kobo-highlights/internal/entities"
)

// cellLimit keeps long highlights from blowing up the bookmark table.
const cellLimit = 60

// BookmarkTable renders bookmarks as an aligned text table with a
// title line and a header row.
func BookmarkTable(title string, bookmarks []entities.Bookmark) string {
	var sb strings.Builder

	sb.WriteString(Bold.Render(title))
	sb.WriteString("\n\n")

	rows := make([][]string, 0, len(bookmarks)+1)
	rows = append(rows, []string{"ID", "Book title", "Book author", "Highlighted text", "Annotation"})
	for _, bm := range bookmarks {
		rows = append(rows, []string{
			bm.ID,
			truncate(bm.Title),
			truncate(bm.Author),
			truncate(flatten(bm.Text)),
			truncate(flatten(bm.Annotation)),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for n, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(cell)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			}
		}
		if n == 0 {
			sb.WriteString(Bold.Render(line.String()))
		} else {
			sb.WriteString(line.String())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= cellLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:cellLimit-1]) + "…"
}
