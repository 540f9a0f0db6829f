package bus

import (
	"context"

	"github.com/yungbote/edubot-backend/internal/realtime"
)

// Bus carries progress messages between API instances.
type Bus interface {
	Publish(ctx context.Context, msg realtime.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error
	Close() error
}
