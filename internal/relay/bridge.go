package relay

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// Bridge mirrors hub broadcasts through a Redis pub/sub channel so that a
// redemption committed on one instance reaches viewers connected to another.
// Optional: a deployment with a single instance runs without one.
type Bridge struct {
	client  *redis.Client
	channel string
	logger  logger.Logger
}

func NewBridge(addr, channel string, log logger.Logger) *Bridge {
	return &Bridge{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
		logger:  log,
	}
}

// Publish pushes an already-marshalled message onto the channel. Failures are
// logged and dropped: the relay never blocks or fails a validation.
func (b *Bridge) Publish(ctx context.Context, payload []byte) {
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.logger.Error("relay publish failed", logger.String("error", err.Error()))
	}
}

// Run subscribes to the channel and rebroadcasts every received message
// through the local hub until the context is cancelled.
func (b *Bridge) Run(ctx context.Context, hub *Hub) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	b.logger.Info("relay bridge subscribed", logger.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			hub.broadcast([]byte(msg.Payload))
		}
	}
}

func (b *Bridge) Close() error {
	return b.client.Close()
}
