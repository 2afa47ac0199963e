package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// Entry is a submission that could not be delivered.
type Entry struct {
	Submission
	QueuedAt time.Time `json:"queued_at"`
	Reason   string    `json:"reason"`
}

// Outbox keeps undelivered submissions in a JSON file. It is safe for
// concurrent use; Flush may run in the background while entries are added.
type Outbox struct {
	path    string
	mu      sync.Mutex // guards entries
	entries []Entry

	// flushMu is held for a whole Flush so two resends never post the same
	// entry twice
	flushMu sync.Mutex
}

// LoadOutbox reads path. A missing or unreadable file gives an empty outbox.
func LoadOutbox(path string) *Outbox {
	o := &Outbox{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return o
	}
	if err := json.Unmarshal(data, &o.entries); err != nil {
		log.Printf("Error loading outbox %s: %v", path, err)
		o.entries = nil
	}
	return o
}

// Len returns the number of queued submissions.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}

// Entries returns a copy of the queue.
func (o *Outbox) Entries() []Entry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Entry(nil), o.entries...)
}

// Add queues s with the reason it failed and writes the file.
func (o *Outbox) Add(s Submission, reason error) error {
	e := Entry{Submission: s, QueuedAt: time.Now().UTC()}
	if reason != nil {
		e.Reason = reason.Error()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = append(o.entries, e)
	return o.save()
}

// Flush resends the queued submissions through c, keeping the ones that
// still fail. Entries added while it runs stay queued. It returns how many
// were delivered and the last delivery error. Concurrent calls run one
// after the other; a later call only sees what the earlier one left queued.
func (o *Outbox) Flush(ctx context.Context, c *Client) (int, error) {
	o.flushMu.Lock()
	defer o.flushMu.Unlock()

	pending := o.Entries()
	if len(pending) == 0 {
		return 0, nil
	}

	var kept []Entry
	var lastErr error
	for _, e := range pending {
		if err := c.Submit(ctx, e.Submission); err != nil {
			e.Reason = err.Error()
			kept = append(kept, e)
			lastErr = err
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.entries) > len(pending) {
		kept = append(kept, o.entries[len(pending):]...)
	}
	o.entries = kept
	if err := o.save(); err != nil {
		return len(pending) - len(kept), err
	}
	return len(pending) - len(kept), lastErr
}

// save writes the queue; callers hold mu.
func (o *Outbox) save() error {
	if o.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(o.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode outbox: %w", err)
	}
	if err := os.WriteFile(o.path, data, 0o644); err != nil {
		return fmt.Errorf("write outbox %s: %w", o.path, err)
	}
	return nil
}
