package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// RequestLog records LLM requests as JSON lines in a file. A nil
// RequestLog discards everything.
type RequestLog struct {
	mu   sync.Mutex
	path string
}

// NewRequestLog creates a log that appends to the given file path.
func NewRequestLog(path string) *RequestLog {
	return &RequestLog{path: path}
}

// logEntry is one line of the request log.
type logEntry struct {
	Time         string `json:"time"`
	Purpose      string `json:"purpose"`
	Model        string `json:"model"`
	LatencyMs    int64  `json:"latencyMs"`
	Success      bool   `json:"success"`
	InputTokens  int    `json:"inputTokens,omitempty"`
	OutputTokens int    `json:"outputTokens,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (l *RequestLog) append(e logEntry) error {
	if l == nil {
		return nil
	}
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *RequestLog
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	entry := logEntry{
		Time:      start.UTC().Format(time.RFC3339),
		Purpose:   PurposeFrom(ctx),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		entry.Error = err.Error()
	}

	// Logging failure never fails the request.
	if logErr := l.log.append(entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
