package realtime

import (
	"context"
	"time"

	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

// Publisher fans a message out beyond this process (bus.Bus satisfies it).
type Publisher interface {
	Publish(ctx context.Context, msg SSEMessage) error
}

// Notifier reports course generation progress. Notify never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, p Progress)
}

type nopNotifier struct{}

func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) Notify(context.Context, Progress) {}

type hubNotifier struct {
	log *logger.Logger
	hub *SSEHub
	pub Publisher
	now func() time.Time
}

// NewNotifier broadcasts into hub directly, or through pub when it is set. With a
// publisher the local hub is fed by the bus forwarder instead.
func NewNotifier(log *logger.Logger, hub *SSEHub, pub Publisher) Notifier {
	return &hubNotifier{
		log: log.With("service", "ProgressNotifier"),
		hub: hub,
		pub: pub,
		now: time.Now,
	}
}

func (n *hubNotifier) Notify(ctx context.Context, p Progress) {
	channel := ChannelForTopic(p.Topic)
	if channel == "" {
		return
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = n.now().UTC()
	}
	p.Completed = p.Progress >= PctComplete

	event := SSEEventCourseProgress
	switch {
	case p.Step == StepFailed:
		event = SSEEventCourseFailed
	case p.Completed:
		event = SSEEventCourseCompleted
	}
	msg := SSEMessage{Channel: channel, Event: event, Data: p}

	if n.pub != nil {
		// The request context may already be cancelled on failure paths.
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		err := n.pub.Publish(pubCtx, msg)
		if err == nil {
			return
		}
		n.log.Warn("Progress publish failed; delivering locally", "channel", channel, "error", err)
	}
	if n.hub != nil {
		n.hub.Broadcast(msg)
	}
}
