package domain

import (
	"time"
)

// maxErrorLen bounds the error text captured on a failed task so a noisy
// dependency cannot blow up notification payloads or the poll registry.
const maxErrorLen = 500

// TaskProgress is the observable state of one background task. Each entry is
// owned exclusively by its creating task; readers get copies.
type TaskProgress struct {
	TaskID      string           `json:"task_id"`
	UserID      string           `json:"user_id"`
	Status      TaskStatus       `json:"status"`
	Progress    int              `json:"progress"` // 0..100
	CurrentStep string           `json:"current_step"`
	Message     string           `json:"message"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Error       string           `json:"error,omitempty"`
	Result      *FilteringResult `json:"result,omitempty"`
	ResultPath  string           `json:"result_path,omitempty"`
}

// NewTaskProgress creates a progress entry in the initial processing state.
func NewTaskProgress(taskID, userID string) TaskProgress {
	return TaskProgress{
		TaskID:    taskID,
		UserID:    userID,
		Status:    TaskStatusProcessing,
		StartedAt: time.Now().UTC(),
	}
}

// Advance moves progress forward while processing. Progress is monotonic:
// a lower value than the current one is clamped to the current value.
// Advancing a terminal task is a no-op.
func (p *TaskProgress) Advance(progress int, step, message string) {
	if p.Status.IsTerminal() {
		return
	}
	if progress > 100 {
		progress = 100
	}
	if progress > p.Progress {
		p.Progress = progress
	}
	p.CurrentStep = step
	p.Message = message
}

// Complete transitions the task to its successful terminal state with
// progress pinned to 100.
func (p *TaskProgress) Complete(result *FilteringResult, resultPath string) {
	if p.Status.IsTerminal() {
		return
	}
	now := time.Now().UTC()
	p.Status = TaskStatusCompleted
	p.Progress = 100
	p.CurrentStep = "done"
	p.CompletedAt = &now
	p.Result = result
	p.ResultPath = resultPath
}

// Fail transitions the task to the failed terminal state, retaining the last
// progress value and capturing a bounded error string.
func (p *TaskProgress) Fail(err error) {
	if p.Status.IsTerminal() {
		return
	}
	now := time.Now().UTC()
	p.Status = TaskStatusFailed
	p.CompletedAt = &now
	if err != nil {
		msg := err.Error()
		if len(msg) > maxErrorLen {
			msg = msg[:maxErrorLen]
		}
		p.Error = msg
	}
}
