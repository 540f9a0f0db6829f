package realtime

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

func recvMessage(t *testing.T, ch <-chan SSEMessage, timeout time.Duration) SSEMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for SSE message")
	}
	return SSEMessage{}
}

func TestSSEHubOrderingAndReconnect(t *testing.T) {
	hub := NewSSEHub(logger.NewNop())
	channel := ChannelForTopic("Graph Theory")

	clientA := hub.NewSSEClient()
	hub.AddChannel(clientA, channel)

	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventCourseProgress, Data: Progress{Progress: 0}})
	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventCourseProgress, Data: Progress{Progress: 20}})

	first := recvMessage(t, clientA.Outbound, time.Second)
	second := recvMessage(t, clientA.Outbound, time.Second)
	if first.Data.(Progress).Progress != 0 || second.Data.(Progress).Progress != 20 {
		t.Fatalf("order: got %v then %v", first.Data, second.Data)
	}

	hub.CloseClient(clientA)
	hub.CloseClient(clientA)
	if _, ok := <-clientA.Outbound; ok {
		t.Fatalf("clientA outbound should be closed after disconnect")
	}
	if n := hub.Subscribers(channel); n != 0 {
		t.Fatalf("subscribers after close: %d", n)
	}

	clientB := hub.NewSSEClient()
	hub.AddChannel(clientB, channel)
	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventCourseCompleted})
	if got := recvMessage(t, clientB.Outbound, time.Second); got.Event != SSEEventCourseCompleted {
		t.Fatalf("reconnect event: got=%s", got.Event)
	}
}

func TestChannelForTopicNormalizes(t *testing.T) {
	if ChannelForTopic("  Graph   THEORY ") != "course:graph theory" {
		t.Fatalf("unexpected channel: %q", ChannelForTopic("  Graph   THEORY "))
	}
	if ChannelForTopic("   ") != "" {
		t.Fatalf("blank topic should have no channel")
	}
}

func TestModuleProgressWindow(t *testing.T) {
	if ModuleProgress(0, 5) != 40 || ModuleProgress(5, 5) != 70 {
		t.Fatalf("window bounds: %d..%d", ModuleProgress(0, 5), ModuleProgress(5, 5))
	}
	prev := -1
	for i := 0; i < 7; i++ {
		p := ModuleProgress(i, 7)
		if p < prev || p < PctModulesStart || p >= PctQuiz {
			t.Fatalf("module %d progress %d out of order or window", i, p)
		}
		prev = p
	}
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, SSEMessage) error {
	f.calls++
	return errors.New("redis down")
}

func TestNotifierEventsAndLocalFallback(t *testing.T) {
	hub := NewSSEHub(logger.NewNop())
	pub := &failingPublisher{}
	n := NewNotifier(logger.NewNop(), hub, pub)

	client := hub.NewSSEClient()
	hub.AddChannel(client, ChannelForTopic("Rust"))

	n.Notify(context.Background(), Progress{Topic: "rust", Step: StepGeneratingSyllabus, Progress: PctSyllabus})
	n.Notify(context.Background(), Progress{Topic: "Rust", Step: StepComplete, Progress: PctComplete})
	n.Notify(context.Background(), Progress{Topic: "RUST", Step: StepFailed, Progress: PctQuiz, Error: "boom"})

	mid := recvMessage(t, client.Outbound, time.Second)
	done := recvMessage(t, client.Outbound, time.Second)
	failed := recvMessage(t, client.Outbound, time.Second)
	if mid.Event != SSEEventCourseProgress || done.Event != SSEEventCourseCompleted || failed.Event != SSEEventCourseFailed {
		t.Fatalf("events: %s %s %s", mid.Event, done.Event, failed.Event)
	}
	p := done.Data.(Progress)
	if !p.Completed || p.Timestamp.IsZero() {
		t.Fatalf("completed progress: %+v", p)
	}
	if pub.calls != 3 {
		t.Fatalf("publisher calls: %d", pub.calls)
	}
}

func TestServeHTTPStreamsUntilTerminalEvent(t *testing.T) {
	hub := NewSSEHub(logger.NewNop())
	client := hub.NewSSEClient()
	channel := ChannelForTopic("Go")
	hub.AddChannel(client, channel)

	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventCourseProgress, Data: Progress{Topic: "Go", Step: StepInitializing}})
	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventCourseCompleted, Data: Progress{Topic: "Go", Step: StepComplete, Progress: 100}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/educate/progress?topic=Go", nil)

	done := make(chan struct{})
	go func() {
		hub.ServeHTTP(rec, req, client)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stream did not end after terminal event")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type: %q", ct)
	}
	var events []string
	sc := bufio.NewScanner(strings.NewReader(rec.Body.String()))
	for sc.Scan() {
		if line := sc.Text(); strings.HasPrefix(line, "event: ") {
			events = append(events, strings.TrimPrefix(line, "event: "))
		}
	}
	if len(events) != 2 || events[1] != string(SSEEventCourseCompleted) {
		t.Fatalf("events: %v\nbody:\n%s", events, rec.Body.String())
	}
}
