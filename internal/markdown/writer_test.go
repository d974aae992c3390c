package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videbar/kobo-highlights/internal/entities"
)

func TestFormatBookmark(t *testing.T) {
	tests := []struct {
		name     string
		bookmark entities.Bookmark
		expected string
	}{
		{
			name: "single line without annotation",
			bookmark: entities.Bookmark{
				Text: "I am a bookmark",
			},
			expected: "> I am a bookmark",
		},
		{
			name: "multiple lines are quoted line by line",
			bookmark: entities.Bookmark{
				Text: "I am a bookmark with multiple lines.\nI continue here",
			},
			expected: "> I am a bookmark with multiple lines.\n> I continue here",
		},
		{
			name: "annotation follows after a blank line",
			bookmark: entities.Bookmark{
				Text:       "I am a bookmark",
				Annotation: "I am an annotation with multiple lines\nand multiple paragraphs:\n\nI continue here",
			},
			expected: "> I am a bookmark\n\n" +
				"I am an annotation with multiple lines\nand multiple paragraphs:\n\nI continue here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBookmark(tt.bookmark))
		})
	}
}

func TestAppendBookmarkCreatesFile(t *testing.T) {
	dir := t.TempDir()
	bm := entities.Bookmark{
		ID:     "11111111-1111-1111-1111-111111111111",
		Text:   "I am a bookmark with multiple lines.\nI continue here",
		Title:  "Book title with a - in the middle",
		Author: "Author name with a -in the middle (no spaces)",
	}

	require.NoError(t, AppendBookmark(bm, dir))

	path := filepath.Join(dir, "Book title with a - in the middle - Author name with a -in the middle (no spaces).md")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "> I am a bookmark with multiple lines.\n> I continue here", string(raw))
}

func TestAppendBookmarkToExistingFile(t *testing.T) {
	dir := t.TempDir()
	first := entities.Bookmark{
		ID:     "1",
		Text:   "First highlight",
		Title:  "A Book",
		Author: "An Author",
	}
	second := entities.Bookmark{
		ID:         "2",
		Text:       "I am a bookmark",
		Annotation: "I am an annotation",
		Title:      "A Book",
		Author:     "An Author",
	}

	require.NoError(t, AppendBookmark(first, dir))

	path := filepath.Join(dir, "A Book - An Author.md")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, AppendBookmark(second, dir))

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	// Prior content is preserved byte for byte before the separator.
	assert.Equal(t, string(before), string(after[:len(before)]))
	assert.Equal(t, string(before)+"\n\n***\n\n> I am a bookmark\n\nI am an annotation", string(after))
}

func TestAppendBookmarkSeparateBooksSeparateFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, AppendBookmark(entities.Bookmark{ID: "1", Text: "one", Title: "Book A", Author: "X"}, dir))
	require.NoError(t, AppendBookmark(entities.Bookmark{ID: "2", Text: "two", Title: "Book B", Author: "X"}, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAppendBookmarkWriteFailure(t *testing.T) {
	bm := entities.Bookmark{ID: "1", Text: "text", Title: "Book", Author: "Author"}

	err := AppendBookmark(bm, filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
