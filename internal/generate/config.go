package generate

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// QuestionsPerNote is how many questions to request per note.
	QuestionsPerNote int

	// Difficulty, when non-empty, pins every generated question to one
	// difficulty instead of letting the LLM mix them.
	Difficulty string

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		QuestionsPerNote: 5,
		MaxTokens:        4096,
		Temperature:      0.7,
	}
}
