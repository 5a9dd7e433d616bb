package ws

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/domain"
	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/service/tasks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) (*tasks.Broadcaster, *httptest.Server) {
	t.Helper()

	broker := tasks.NewBroadcaster(16, testLogger())
	handler := NewHandler(broker, testLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/progress/{user_id}", handler.Progress)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return broker, srv
}

func dial(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/progress/" + userID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscriber(t *testing.T, broker *tasks.Broadcaster, userID string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if broker.SubscriberCount(userID) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no subscriber registered for %q", userID)
}

func TestHandler_DeliversEvents(t *testing.T) {
	t.Parallel()

	broker, srv := newTestServer(t)
	conn := dial(t, srv, "learner-1")
	waitForSubscriber(t, broker, "learner-1")

	progress := domain.NewTaskProgress("task-1", "learner-1")
	progress.Advance(40, "classify", "classification running")
	broker.Publish(tasks.Event{Type: tasks.EventProgress, Progress: progress})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event tasks.Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.Type != tasks.EventProgress {
		t.Errorf("event type = %q, want progress", event.Type)
	}
	if event.Progress.TaskID != "task-1" || event.Progress.Progress != 40 {
		t.Errorf("event progress = %+v", event.Progress)
	}
}

func TestHandler_OnlyOwnUserEvents(t *testing.T) {
	t.Parallel()

	broker, srv := newTestServer(t)
	conn := dial(t, srv, "learner-1")
	waitForSubscriber(t, broker, "learner-1")

	other := domain.NewTaskProgress("task-other", "learner-2")
	broker.Publish(tasks.Event{Type: tasks.EventProgress, Progress: other})

	own := domain.NewTaskProgress("task-own", "learner-1")
	broker.Publish(tasks.Event{Type: tasks.EventProgress, Progress: own})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event tasks.Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.Progress.TaskID != "task-own" {
		t.Errorf("received task %q, want task-own only", event.Progress.TaskID)
	}
}

func TestHandler_DisconnectCleansUp(t *testing.T) {
	t.Parallel()

	broker, srv := newTestServer(t)
	conn := dial(t, srv, "learner-1")
	waitForSubscriber(t, broker, "learner-1")

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if broker.SubscriberCount("learner-1") == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("subscriber still registered after disconnect")
}

func TestHandler_MissingUserID(t *testing.T) {
	t.Parallel()

	broker := tasks.NewBroadcaster(16, testLogger())
	handler := NewHandler(broker, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/ws/progress/", nil)
	rec := httptest.NewRecorder()

	handler.Progress(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
