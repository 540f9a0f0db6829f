package bus

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime"
)

func TestRedisBusRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis bus integration tests")
	}
	b, err := NewRedisBus(logger.NewNop(), RedisConfig{Addr: addr, Channel: "edubot-test-" + uuid.NewString()})
	if err != nil {
		t.Fatalf("NewRedisBus: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan realtime.SSEMessage, 1)
	if err := b.StartForwarder(ctx, func(m realtime.SSEMessage) { got <- m }); err != nil {
		t.Fatalf("StartForwarder: %v", err)
	}

	sent := realtime.SSEMessage{
		Channel: realtime.ChannelForTopic("Graph Theory"),
		Event:   realtime.SSEEventCourseProgress,
		Data:    realtime.Progress{Topic: "Graph Theory", Step: realtime.StepGeneratingSyllabus, Progress: 20},
	}
	if err := b.Publish(ctx, sent); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case m := <-got:
		if m.Channel != sent.Channel || m.Event != sent.Event {
			t.Fatalf("forwarded message mismatch: %+v", m)
		}
		data, ok := m.Data.(map[string]any)
		if !ok || data["step"] != realtime.StepGeneratingSyllabus {
			t.Fatalf("forwarded data: %#v", m.Data)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for forwarded message")
	}
}

func TestNewRedisBusRequiresAddr(t *testing.T) {
	if _, err := NewRedisBus(logger.NewNop(), RedisConfig{}); err == nil {
		t.Fatalf("expected error without address")
	}
}
