// Package tasks tracks background filtering runs: a progress registry for
// polling, a per-user broadcaster for push notifications, a bounded worker
// pool, and the orchestrator that ties the pipeline together.
package tasks

import (
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// EventType identifies the kind of a push notification.
type EventType string

const (
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventError     EventType = "error"
)

// Event is one push notification about a task. The embedded snapshot is a
// copy; subscribers may hold it without synchronization.
type Event struct {
	Type     EventType           `json:"type"`
	Progress domain.TaskProgress `json:"progress"`
}

func eventFor(p domain.TaskProgress) Event {
	switch p.Status {
	case domain.TaskStatusCompleted:
		return Event{Type: EventCompleted, Progress: p}
	case domain.TaskStatusFailed:
		return Event{Type: EventError, Progress: p}
	default:
		return Event{Type: EventProgress, Progress: p}
	}
}
