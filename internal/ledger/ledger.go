// Package ledger persists the set of bookmark ids that have already
// been imported. The ledger is what makes import runs idempotent: a
// bookmark whose id is recorded here is not considered "new" anymore.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Key is the single top-level key of the ledger file.
const Key = "imported_bookmark_ids"

// ErrCorrupt is returned when the ledger file exists but does not have
// the expected structure. The caller decides whether to reset it; the
// file itself is left untouched.
var ErrCorrupt = errors.New("ledger file is corrupt")

// fileFormat is the on-disk shape of the ledger. Ids are persisted as
// an ordered list so that re-saving produces stable diffs; new ids are
// only ever appended at the end.
type fileFormat struct {
	ImportedBookmarkIDs []*string `json:"imported_bookmark_ids"`
}

// Load reads the ledger at path and returns the recorded ids in file
// order. Null entries are tolerated and skipped. If the file does not
// exist it is created empty and no ids are returned. A file that is
// present but structurally invalid yields ErrCorrupt.
func Load(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := save(path, nil); err != nil {
			return nil, fmt.Errorf("failed to initialize ledger: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	ids, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrCorrupt, path, err)
	}
	return ids, nil
}

// LoadOrReset behaves like Load, but recovers from a corrupt ledger
// when the caller confirms it: confirm is asked whether the corrupt
// file may be discarded, and only an affirmative answer resets the
// ledger to empty. Declining keeps the file byte-for-byte untouched
// and surfaces the original ErrCorrupt.
//
// confirm is injected so this package never talks to a console
// directly.
func LoadOrReset(path string, confirm func(prompt string) bool) ([]string, error) {
	ids, err := Load(path)
	if !errors.Is(err, ErrCorrupt) {
		return ids, err
	}

	prompt := fmt.Sprintf("The ledger file %s is not valid and cannot be read. "+
		"Reset it and treat every bookmark as new?", path)
	if confirm == nil || !confirm(prompt) {
		return nil, err
	}

	if err := Reset(path); err != nil {
		return nil, err
	}
	return nil, nil
}

// Record adds id to the ledger at path. Recording an id that is
// already present is a no-op. The file is rewritten in full so that
// its contents always reflect the complete current set.
func Record(path, id string) error {
	ids, err := Load(path)
	if err != nil {
		return err
	}

	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}

	ids = append(ids, id)
	if err := save(path, ids); err != nil {
		return fmt.Errorf("failed to record bookmark id: %w", err)
	}
	return nil
}

// Reset replaces the ledger at path with an empty one. Only called
// after the user has explicitly confirmed discarding a corrupt file.
func Reset(path string) error {
	if err := save(path, nil); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}
	return nil
}

// parse validates the raw ledger contents. Structural validity means:
// a JSON object with the imported_bookmark_ids key bound to a list of
// strings (or nulls, which stand in for unknown ids).
func parse(raw []byte) ([]string, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("not a JSON object: %v", err)
	}

	value, ok := top[Key]
	if !ok {
		return nil, fmt.Errorf("missing %q key", Key)
	}

	var entries []*string
	if err := json.Unmarshal(value, &entries); err != nil {
		return nil, fmt.Errorf("%q is not a list of ids: %v", Key, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			ids = append(ids, *entry)
		}
	}
	return ids, nil
}

func save(path string, ids []string) error {
	entries := make([]*string, len(ids))
	for i := range ids {
		entries[i] = &ids[i]
	}

	raw, err := json.Marshal(fileFormat{ImportedBookmarkIDs: entries})
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
