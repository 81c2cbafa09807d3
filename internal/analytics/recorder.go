// Package analytics records named usage events to a local JSONL collector.
package analytics

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one line of the events file.
type Event struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Timestamp time.Time         `json:"timestamp"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

// Recorder appends events to a JSONL file. The file is opened per event so
// several processes can share it.
type Recorder struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

// NewRecorder returns a Recorder writing to path. An empty path disables
// recording.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path, now: time.Now}
}

// Path is the events file location.
func (r *Recorder) Path() string { return r.path }

// Track appends one event.
func (r *Recorder) Track(ctx context.Context, name string, attrs map[string]string) error {
	if r == nil || r.path == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: r.now().UTC(),
		Attrs:     attrs,
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	data = append(data, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create events dir: %w", err)
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// ReadEvents returns every event in the file at path, oldest first.
// Malformed lines are skipped.
func ReadEvents(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open events: %w", err)
	}
	defer f.Close()

	var out []Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("scan events: %w", err)
	}
	return out, nil
}
