// Package store persists the application's JSON documents: the question
// store, the config (streak + preferences), the attempt history, and the
// import inbox. Single user, single writer; writes are atomic via a temp
// file and rename.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/quiz"
)

const (
	questionsFile = "questions.json"
	configFile    = "config.json"
	historyFile   = "history.json"
	importsDir    = "imports"
)

// HistoryVersion is the current history document version.
const HistoryVersion = 1

// History is the append-only record of finished quiz attempts.
type History struct {
	Version  int            `json:"version"`
	Attempts []quiz.Attempt `json:"attempts"`
}

// Store reads and writes the JSON documents under a single data
// directory.
type Store struct {
	dir string
}

// Open prepares a Store rooted at dir, creating the directory tree as
// needed. An empty dir resolves to the default data directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, importsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory this store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// LogPath returns the LLM request log location inside the data dir.
func (s *Store) LogPath() string {
	return filepath.Join(s.dir, "llm.log")
}

// DefaultDir resolves the data directory in priority order:
// 1. NOTEQUIZ_DATA environment variable
// 2. $XDG_DATA_HOME/notequiz
// 3. ~/.local/share/notequiz
func DefaultDir() (string, error) {
	if p := os.Getenv("NOTEQUIZ_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "notequiz"), nil
}

// LoadQuestions reads the question store. A missing file yields an
// empty store, not an error.
func (s *Store) LoadQuestions() (question.Store, error) {
	var qs question.Store
	err := s.readJSON(questionsFile, &qs)
	if errors.Is(err, fs.ErrNotExist) {
		return question.NewStore(), nil
	}
	if err != nil {
		return question.Store{}, err
	}
	return qs, nil
}

// SaveQuestions writes the question store atomically.
func (s *Store) SaveQuestions(qs question.Store) error {
	return s.writeJSON(questionsFile, qs)
}

// LoadConfig reads the config document, validating it defensively.
// A missing file yields defaults. A corrupted or structurally invalid
// document also yields defaults, with the problems returned as warnings
// so the caller can report them; loading never fails on bad content.
func (s *Store) LoadConfig() (config.Config, []string) {
	raw, err := os.ReadFile(filepath.Join(s.dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Default(), []string{fmt.Sprintf("read config: %v", err)}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return config.Default(), []string{fmt.Sprintf("config is not valid JSON: %v", err)}
	}
	if res := config.Validate(decoded); !res.Valid {
		return config.Default(), res.Errors
	}

	var cfg config.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return config.Default(), []string{fmt.Sprintf("decode config: %v", err)}
	}
	return cfg, nil
}

// SaveConfig writes the config document atomically.
func (s *Store) SaveConfig(cfg config.Config) error {
	return s.writeJSON(configFile, cfg)
}

// LoadHistory reads the attempt history. A missing file yields an empty
// history.
func (s *Store) LoadHistory() (History, error) {
	var h History
	err := s.readJSON(historyFile, &h)
	if errors.Is(err, fs.ErrNotExist) {
		return History{Version: HistoryVersion, Attempts: []quiz.Attempt{}}, nil
	}
	if err != nil {
		return History{}, err
	}
	return h, nil
}

// AppendAttempt appends one attempt to the history document and writes
// it back. History is append-only; nothing is ever rewritten or removed.
func (s *Store) AppendAttempt(att quiz.Attempt) error {
	h, err := s.LoadHistory()
	if err != nil {
		return err
	}
	h.Attempts = append(h.Attempts, att)
	return s.writeJSON(historyFile, h)
}

// ImportFiles lists the pending batch files in the import inbox, sorted
// by name so batches land in a stable order.
func (s *Store) ImportFiles() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, importsDir))
	if err != nil {
		return nil, fmt.Errorf("read import inbox: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ReadImportFile returns the raw bytes of one inbox batch.
func (s *Store) ReadImportFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, importsDir, name))
}

// WriteImportFile drops a new batch into the inbox.
func (s *Store) WriteImportFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, importsDir, name), data, 0o644)
}

// RemoveImportFile deletes a consumed inbox batch.
func (s *Store) RemoveImportFile(name string) error {
	return os.Remove(filepath.Join(s.dir, importsDir, name))
}

func (s *Store) readJSON(name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeJSON writes v to name via a temp file and rename, so a crash
// mid-write cannot leave a truncated document behind.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
