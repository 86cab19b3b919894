// Package events publishes membership and ledger changes to subscribers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Type names an event; it doubles as the AMQP routing key.
type Type string

const (
	GroupCreated        Type = "group.created"
	JoinRequested       Type = "group.join_requested"
	JoinApproved        Type = "group.join_approved"
	JoinRejected        Type = "group.join_rejected"
	MemberRemoved       Type = "group.member_removed"
	MemberLeft          Type = "group.member_left"
	GroupExpenseAdded   Type = "ledger.group_expense_added"
	GroupExpenseDeleted Type = "ledger.group_expense_deleted"
)

// Event is a change notification. Consumers re-read state from the store;
// the event only says what changed.
type Event struct {
	Type      Type      `json:"type"`
	GroupID   string    `json:"group_id,omitempty"`
	ActorID   string    `json:"actor_id"`
	SubjectID string    `json:"subject_id,omitempty"`
	Version   int64     `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds an event stamped with the current time.
func New(t Type, groupID, actorID, subjectID string, version int64) Event {
	return Event{
		Type:      t,
		GroupID:   groupID,
		ActorID:   actorID,
		SubjectID: subjectID,
		Version:   version,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the default logger. It is used when no
// broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, e Event) error {
	slog.InfoContext(ctx, "event",
		"type", e.Type,
		"group_id", e.GroupID,
		"actor_id", e.ActorID,
		"subject_id", e.SubjectID,
		"version", e.Version,
	)
	return nil
}

func (LogPublisher) Close() error { return nil }

// Recorder keeps published events in memory as the JSON bodies a broker
// would carry. Tests use it to assert on what a service emitted.
type Recorder struct {
	mu     sync.Mutex
	bodies [][]byte
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	body, err := e.ToJSON()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	r.mu.Lock()
	r.bodies = append(r.bodies, body)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Close() error { return nil }

// Drain decodes and returns every event recorded so far, oldest first.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	bodies := r.bodies
	r.bodies = nil
	r.mu.Unlock()

	out := make([]Event, 0, len(bodies))
	for _, body := range bodies {
		e, err := FromJSON(body)
		if err != nil {
			slog.Warn("undecodable recorded event", "error", err)
			continue
		}
		out = append(out, e)
	}
	return out
}
