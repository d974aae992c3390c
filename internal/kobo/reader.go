package kobo

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/videbar/kobo-highlights/internal/entities"
)

var (
	// ErrSourceUnavailable is returned when the ereader database cannot
	// be found or read, typically because the device is not connected.
	ErrSourceUnavailable = errors.New("ereader database unavailable")

	// ErrIncompatibleSchema is returned when the database does not have
	// the tables and columns this program expects.
	ErrIncompatibleSchema = errors.New("incompatible ereader database")
)

// ContentTypeBook selects book rows in the content table. The content
// table also holds chapters and other entries under different types.
const ContentTypeBook = 6

// DefaultSnapshotPath returns the path of the highlights database on a
// mounted Kobo ereader.
func DefaultSnapshotPath(ereaderDir string) string {
	return filepath.Join(ereaderDir, ".kobo", "KoboReader.sqlite")
}

// Reader extracts bookmarks from a Kobo KoboReader.sqlite database.
//
// It never operates on the live database: ExtractBookmarks copies the
// snapshot into a scratch directory first and deletes the copy when it
// is done, so a connected device is never touched beyond a single read.
type Reader struct {
	snapshotPath string
}

// NewReader creates a Reader for the database at snapshotPath. The
// snapshot must exist and be readable.
func NewReader(snapshotPath string) (*Reader, error) {
	if _, err := os.Stat(snapshotPath); err != nil {
		return nil, fmt.Errorf("%w: %s (is the ereader connected and the configuration correct?)",
			ErrSourceUnavailable, snapshotPath)
	}
	return &Reader{snapshotPath: snapshotPath}, nil
}

// SnapshotPath returns the path of the source database.
func (r *Reader) SnapshotPath() string {
	return r.snapshotPath
}

// ExtractBookmarks reads every highlight from the database and returns
// them in the database's natural row order. Rows without highlighted
// text (page-marks) are skipped. Title and author are resolved through
// the content table; a missing attribution becomes
// entities.UnknownAuthor.
func (r *Reader) ExtractBookmarks() ([]entities.Bookmark, error) {
	workDir, err := os.MkdirTemp("", "kobo-highlights-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	localCopy := filepath.Join(workDir, filepath.Base(r.snapshotPath))
	if err := copyFile(r.snapshotPath, localCopy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	db, err := sql.Open("sqlite3", localCopy+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database copy: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT BookmarkID, Text, Annotation, VolumeID FROM Bookmark`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleSchema, err)
	}
	defer rows.Close()

	contentStmt, err := db.Prepare(
		`SELECT Title, Attribution FROM content WHERE ContentID = ? AND ContentType = ? LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleSchema, err)
	}
	defer contentStmt.Close()

	var bookmarks []entities.Bookmark

	for rows.Next() {
		var id, volumeID string
		var text, annotation sql.NullString

		if err := rows.Scan(&id, &text, &annotation, &volumeID); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}

		// Rows without text mark a page rather than a highlight.
		if !text.Valid || strings.TrimSpace(text.String) == "" {
			continue
		}

		title, author, err := lookupBook(contentStmt, volumeID)
		if err != nil {
			return nil, err
		}

		bookmarks = append(bookmarks, entities.Bookmark{
			ID:         id,
			Text:       strings.TrimSpace(text.String),
			Annotation: annotation.String,
			Title:      title,
			Author:     author,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmark rows: %w", err)
	}

	return bookmarks, nil
}

// lookupBook resolves the title and author of the book a bookmark
// belongs to. The same book can appear multiple times in the content
// table; the first row wins.
func lookupBook(stmt *sql.Stmt, volumeID string) (title, author string, err error) {
	var rawTitle, rawAuthor sql.NullString

	err = stmt.QueryRow(volumeID, ContentTypeBook).Scan(&rawTitle, &rawAuthor)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", fmt.Errorf("%w: no content entry for volume %q", ErrIncompatibleSchema, volumeID)
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to look up book for volume %q: %w", volumeID, err)
	}

	title = strings.TrimSpace(rawTitle.String)

	if rawAuthor.Valid && strings.TrimSpace(rawAuthor.String) != "" {
		author = NormalizeAuthor(rawAuthor.String)
	} else {
		author = entities.UnknownAuthor
	}

	return title, author, nil
}

// NormalizeAuthor makes an attribution string safe to use in the
// "<title> - <author>.md" filename convention by collapsing the " - "
// separator, and trims surrounding whitespace.
func NormalizeAuthor(attribution string) string {
	return strings.TrimSpace(strings.ReplaceAll(attribution, " - ", "-"))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
