package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/notes"
	"github.com/abhisek/notequiz/internal/question"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	// prior holds question texts already generated per note path, fed
	// back into the prompt to avoid duplicates across runs.
	prior map[string][]string
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		prior:    make(map[string][]string),
	}
}

// Generate produces a batch of questions for the given note.
func (g *LLMGenerator) Generate(ctx context.Context, note notes.Note) ([]question.Question, error) {
	ctx = llm.WithPurpose(ctx, "generate-questions")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(note, g.config, g.prior[note.Path])},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var batch question.ImportBatch
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	for i := range batch.Questions {
		batch.Questions[i].ID = uuid.NewString()
		batch.Questions[i].SourceNote = note.Path
		batch.Questions[i].CreatedAt = today
	}

	if err := checkBatch(batch); err != nil {
		return nil, err
	}

	for _, q := range batch.Questions {
		g.prior[note.Path] = append(g.prior[note.Path], q.Question)
	}

	return batch.Questions, nil
}

// checkBatch runs the import validator over the generated questions so
// nothing structurally broken ever reaches the inbox.
func checkBatch(batch question.ImportBatch) error {
	raw, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal generated batch: %w", err)
	}
	var candidate any
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return fmt.Errorf("reparse generated batch: %w", err)
	}

	result := question.ValidateImportFile(candidate)
	if !result.Valid {
		return fmt.Errorf("generated questions failed validation:\n%s", strings.Join(result.Errors, "\n"))
	}
	return nil
}
