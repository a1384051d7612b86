package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/quiz"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestQuestions_MissingFileYieldsEmptyStore(t *testing.T) {
	s := open(t)
	qs, err := s.LoadQuestions()
	require.NoError(t, err)
	assert.Equal(t, question.StoreVersion, qs.Version)
	assert.Empty(t, qs.Questions)
}

func TestQuestions_RoundTrip(t *testing.T) {
	s := open(t)

	qs := question.NewStore()
	qs.Questions = append(qs.Questions,
		question.Question{
			ID: "q-1", Type: question.TypeTrueFalse, SourceNote: "n.md",
			Difficulty: question.DifficultyEasy, Question: "?", Explanation: "e",
			CorrectBool: true,
		},
		question.Question{
			ID: "q-2", Type: question.TypeFillBlank, SourceNote: "n.md",
			Difficulty: question.DifficultyHard, Question: "A ___.",
			Explanation: "e", Blanks: []string{"queue"},
		},
	)
	require.NoError(t, s.SaveQuestions(qs))

	got, err := s.LoadQuestions()
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.True(t, got.Questions[0].CorrectBool)
	assert.Equal(t, []string{"queue"}, got.Questions[1].Blanks)
}

func TestQuestions_CorruptedFileIsAnError(t *testing.T) {
	s := open(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "questions.json"), []byte("{oops"), 0o644))

	_, err := s.LoadQuestions()
	assert.Error(t, err)
}

func TestConfig_MissingFileYieldsDefaults(t *testing.T) {
	s := open(t)
	cfg, warnings := s.LoadConfig()
	assert.Empty(t, warnings)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfig_RoundTrip(t *testing.T) {
	s := open(t)

	cfg := config.Default()
	cfg.Streak.Current = 3
	cfg.Streak.Longest = 9
	cfg.Streak.LastQuizDate = "2026-08-23"
	require.NoError(t, s.SaveConfig(cfg))

	got, warnings := s.LoadConfig()
	assert.Empty(t, warnings)
	assert.Equal(t, cfg, got)
}

func TestConfig_CorruptedFileFallsBackToDefaults(t *testing.T) {
	s := open(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "config.json"), []byte("not json"), 0o644))

	cfg, warnings := s.LoadConfig()
	assert.Equal(t, config.Default(), cfg)
	assert.NotEmpty(t, warnings)
}

func TestConfig_InvalidShapeFallsBackWithDiagnostics(t *testing.T) {
	s := open(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "config.json"),
		[]byte(`{"version": 1, "streak": {"current": "three", "longest": 0}, "preferences": {}}`), 0o644))

	cfg, warnings := s.LoadConfig()
	assert.Equal(t, config.Default(), cfg)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "streak current must be a number")
}

func TestHistory_AppendIsCumulative(t *testing.T) {
	s := open(t)

	require.NoError(t, s.AppendAttempt(quiz.Attempt{ID: "a-1", Date: time.Now(), Score: 80}))
	require.NoError(t, s.AppendAttempt(quiz.Attempt{ID: "a-2", Date: time.Now(), Score: 100}))

	h, err := s.LoadHistory()
	require.NoError(t, err)
	require.Len(t, h.Attempts, 2)
	assert.Equal(t, "a-1", h.Attempts[0].ID)
	assert.Equal(t, "a-2", h.Attempts[1].ID)
}

func TestImportInbox(t *testing.T) {
	s := open(t)

	names, err := s.ImportFiles()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.WriteImportFile("b-two.json", []byte(`{"questions": []}`)))
	require.NoError(t, s.WriteImportFile("a-one.json", []byte(`{"questions": []}`)))
	require.NoError(t, s.WriteImportFile("notes.txt", []byte("ignored")))

	names, err = s.ImportFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"a-one.json", "b-two.json"}, names)

	raw, err := s.ReadImportFile("a-one.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions": []}`, string(raw))

	require.NoError(t, s.RemoveImportFile("a-one.json"))
	names, err = s.ImportFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"b-two.json"}, names)
}
