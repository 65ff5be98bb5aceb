// Package report is the output side of a conversion run: a JSONL event log,
// a styled terminal summary, and YAML emission of the document and findings.
package report

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nmoret/diagile/internal/finding"
)

const defaultMaxLogBytes = 5 * 1024 * 1024

// Event is one JSONL conversion-log line.
type Event struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id"`
	Stage     string `json:"stage"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Location  string `json:"location,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

// NewRunID returns the identifier shared by every event of one run.
func NewRunID() string { return uuid.NewString() }

// Logger appends conversion events to a JSONL file. Safe for concurrent use.
type Logger struct {
	file *os.File
	path string
	mu   sync.Mutex
}

// NewLogger opens (or creates) the log file for appending. When the file has
// grown past the rotation limit it is moved aside to "<path>.1" first.
func NewLogger(path string) (*Logger, error) {
	if info, err := os.Stat(path); err == nil && info.Size() >= defaultMaxLogBytes {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &Logger{file: file, path: path}, nil
}

// Log writes one event line. A missing timestamp is filled in.
func (l *Logger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

// LogFindings writes one event per finding, tagged with the run id and the
// stage that produced them.
func (l *Logger) LogFindings(runID, stage string, findings []finding.Finding) error {
	for _, f := range findings {
		err := l.Log(Event{
			RunID:    runID,
			Stage:    stage,
			Level:    string(f.Severity),
			Message:  f.Message,
			Location: f.Location,
			Kind:     string(f.Kind),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
