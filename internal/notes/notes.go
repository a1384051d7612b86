// Package notes discovers markdown notes in a vault directory. Question
// generation reads note content from here; nothing in this package
// writes to the vault.
package notes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxNoteBytes caps how much of a note is read. Anything beyond this is
// ignored rather than blowing the prompt budget.
const MaxNoteBytes = 64 << 10

// Note is one markdown file from the vault.
type Note struct {
	// Path is the vault-relative path, used as the question's
	// sourceNote identifier.
	Path string

	// Title is the first level-1 heading, or the file name without
	// extension when the note has none.
	Title string

	// Content is the note body, truncated to MaxNoteBytes.
	Content string
}

// List walks the vault and returns every markdown note, sorted by the
// walk order (lexical within each directory). Hidden directories such as
// .obsidian and .git are skipped.
func List(vault string) ([]Note, error) {
	info, err := os.Stat(vault)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault %q is not a directory", vault)
	}

	var found []Note
	err = filepath.WalkDir(vault, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != vault && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		note, err := read(vault, path)
		if err != nil {
			return err
		}
		found = append(found, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault: %w", err)
	}
	return found, nil
}

// Load reads a single note by its vault-relative path.
func Load(vault, rel string) (Note, error) {
	return read(vault, filepath.Join(vault, rel))
}

func read(vault, path string) (Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Note{}, fmt.Errorf("read note: %w", err)
	}
	if len(raw) > MaxNoteBytes {
		raw = raw[:MaxNoteBytes]
	}

	rel, err := filepath.Rel(vault, path)
	if err != nil {
		rel = path
	}

	content := string(raw)
	return Note{
		Path:    filepath.ToSlash(rel),
		Title:   titleOf(content, path),
		Content: content,
	}, nil
}

// titleOf extracts the first "# " heading, falling back to the file name.
func titleOf(content, path string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
