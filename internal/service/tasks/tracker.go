package tasks

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
)

// notifier receives a snapshot after every state transition.
type notifier interface {
	Publish(Event)
}

// defaultMaxTerminal bounds how many finished tasks stay pollable. Results
// are already persisted by the artifact store; the registry only needs to
// keep recent ones around for polling clients.
const defaultMaxTerminal = 1024

// Tracker is the progress registry for background tasks. Each task has a
// single writer (its own job goroutine); readers receive copies. The
// registry is always updated before the notifier is invoked, so the poll
// endpoint never lags behind push. Terminal tasks are retained up to a
// bound, oldest evicted first.
type Tracker struct {
	mu          sync.RWMutex
	tasks       map[string]*domain.TaskProgress
	terminal    []string // terminal task ids in completion order
	maxTerminal int
	notifier    notifier
	log         *slog.Logger
}

// NewTracker creates a Tracker publishing transitions to n.
func NewTracker(n notifier, logger *slog.Logger) *Tracker {
	return &Tracker{
		tasks:       make(map[string]*domain.TaskProgress),
		maxTerminal: defaultMaxTerminal,
		notifier:    n,
		log:         logger.With("service", "tracker"),
	}
}

// Start registers a new task in the processing state and returns its
// initial snapshot.
func (t *Tracker) Start(taskID, userID string) domain.TaskProgress {
	progress := domain.NewTaskProgress(taskID, userID)

	t.mu.Lock()
	t.tasks[taskID] = &progress
	snapshot := progress
	t.mu.Unlock()

	t.log.Info("task started", slog.String("task_id", taskID), slog.String("user_id", userID))
	t.notifier.Publish(eventFor(snapshot))
	return snapshot
}

// Advance moves a task's progress forward. Unknown task ids are ignored;
// terminal tasks stay untouched.
func (t *Tracker) Advance(taskID string, progress int, step, message string) {
	t.transition(taskID, func(p *domain.TaskProgress) {
		p.Advance(progress, step, message)
	})
}

// Complete transitions a task to its successful terminal state.
func (t *Tracker) Complete(taskID string, result *domain.FilteringResult, resultPath string) {
	t.transition(taskID, func(p *domain.TaskProgress) {
		p.Complete(result, resultPath)
	})
	t.log.Info("task completed", slog.String("task_id", taskID))
}

// Fail transitions a task to the failed terminal state.
func (t *Tracker) Fail(taskID string, err error) {
	t.transition(taskID, func(p *domain.TaskProgress) {
		p.Fail(err)
	})
	t.log.Warn("task failed", slog.String("task_id", taskID), slog.Any("error", err))
}

// Get returns a snapshot of the task. Returns domain.ErrNotFound for
// unknown ids.
func (t *Tracker) Get(taskID string) (domain.TaskProgress, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.tasks[taskID]
	if !ok {
		return domain.TaskProgress{}, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return *p, nil
}

func (t *Tracker) transition(taskID string, apply func(*domain.TaskProgress)) {
	t.mu.Lock()
	p, ok := t.tasks[taskID]
	if !ok {
		t.mu.Unlock()
		t.log.Warn("transition on unknown task", slog.String("task_id", taskID))
		return
	}
	wasTerminal := p.Status.IsTerminal()
	apply(p)
	if !wasTerminal && p.Status.IsTerminal() {
		t.retainTerminal(taskID)
	}
	snapshot := *p
	t.mu.Unlock()

	t.notifier.Publish(eventFor(snapshot))
}

// retainTerminal records a newly terminal task and evicts the oldest
// finished ones beyond the retention bound. Caller holds t.mu.
func (t *Tracker) retainTerminal(taskID string) {
	t.terminal = append(t.terminal, taskID)
	for len(t.terminal) > t.maxTerminal {
		evicted := t.terminal[0]
		t.terminal = t.terminal[1:]
		delete(t.tasks, evicted)
		t.log.Debug("evicted finished task", slog.String("task_id", evicted))
	}
}
