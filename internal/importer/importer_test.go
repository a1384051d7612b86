package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/question"
)

func validBatch(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"id": "q-%d", "type": "multiple_choice", "sourceNote": "notes/go.md",
			"createdAt": "2026-08-20T10:00:00Z", "difficulty": "medium",
			"question": "Question %d?", "explanation": "Explanation %d.",
			"correctAnswer": "yes", "incorrectAnswers": ["no", "maybe", "later"]
		}`, i+1, i+1, i+1)
	}
	return `{"questions": [` + strings.Join(items, ",") + `]}`
}

func TestImportQuestions_RoundTrip(t *testing.T) {
	st := question.NewStore()
	st.Questions = append(st.Questions, question.Question{ID: "existing"})

	res := ImportQuestions([]byte(validBatch(3)), &st)

	require.True(t, res.Success)
	assert.Equal(t, 3, res.Imported)
	assert.Empty(t, res.Errors)
	require.Len(t, st.Questions, 4)

	// Batch order preserved, fields intact.
	assert.Equal(t, "existing", st.Questions[0].ID)
	for i := 1; i <= 3; i++ {
		q := st.Questions[i]
		assert.Equal(t, fmt.Sprintf("q-%d", i), q.ID)
		assert.Equal(t, question.TypeMultipleChoice, q.Type)
		assert.Equal(t, "notes/go.md", q.SourceNote)
		assert.Equal(t, "yes", q.CorrectAnswer)
		assert.Equal(t, []string{"no", "maybe", "later"}, q.IncorrectAnswers)
	}
}

func TestImportQuestions_NoBatchAvailable(t *testing.T) {
	st := question.NewStore()

	for _, raw := range [][]byte{nil, {}} {
		res := ImportQuestions(raw, &st)
		require.False(t, res.Success)
		assert.Equal(t, 0, res.Imported)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "no import file")
	}
	assert.Empty(t, st.Questions)
}

func TestImportQuestions_MalformedJSON(t *testing.T) {
	st := question.NewStore()
	res := ImportQuestions([]byte(`{"questions": [`), &st)
	require.False(t, res.Success)
	assert.Contains(t, res.Errors[0], "not valid JSON")
}

func TestImportQuestions_AllOrNothing(t *testing.T) {
	// Question 2 of 3 carries a stringified boolean; nothing may land.
	batch := `{"questions": [
		{
			"id": "q-1", "type": "true_false", "sourceNote": "n.md",
			"createdAt": "2026-08-20T10:00:00Z", "difficulty": "easy",
			"question": "First?", "explanation": "e", "correctAnswer": true
		},
		{
			"id": "q-2", "type": "true_false", "sourceNote": "n.md",
			"createdAt": "2026-08-20T10:00:00Z", "difficulty": "easy",
			"question": "Second?", "explanation": "e", "correctAnswer": "true"
		},
		{
			"id": "q-3", "type": "true_false", "sourceNote": "n.md",
			"createdAt": "2026-08-20T10:00:00Z", "difficulty": "easy",
			"question": "Third?", "explanation": "e", "correctAnswer": false
		}
	]}`

	st := question.NewStore()
	res := ImportQuestions([]byte(batch), &st)

	require.False(t, res.Success)
	assert.Equal(t, 0, res.Imported)
	assert.Empty(t, st.Questions, "partially-valid batches must never partially land")

	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "Question 2") {
			found = true
		}
	}
	assert.True(t, found, "error list must name Question 2: %v", res.Errors)
}

func TestImportQuestions_EmptyBatchImportsZero(t *testing.T) {
	st := question.NewStore()
	res := ImportQuestions([]byte(`{"questions": []}`), &st)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Imported)
}
