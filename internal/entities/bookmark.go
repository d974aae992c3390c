package entities

// UnknownAuthor is used when the ereader database has no attribution
// for the book a bookmark belongs to.
const UnknownAuthor = "Unknown author"

// Bookmark is a single highlight taken on the ereader.
//
// Text always holds the highlighted passage: rows without text are
// page-marks and are filtered out during extraction. Annotation is the
// optional note attached to the highlight; empty means the bookmark is
// a plain highlight.
type Bookmark struct {
	ID         string
	Text       string
	Annotation string
	Title      string
	Author     string
}

// HasAnnotation reports whether the bookmark carries a note in
// addition to the highlighted text.
func (b Bookmark) HasAnnotation() bool {
	return b.Annotation != ""
}

// DocumentName returns the filename of the markdown document that
// holds the highlights of the bookmark's book. Every bookmark of the
// same (title, author) pair maps to the same document. Two distinct
// books that normalize to the same pair share a document; this is a
// known limitation.
func (b Bookmark) DocumentName() string {
	return b.Title + " - " + b.Author + ".md"
}
