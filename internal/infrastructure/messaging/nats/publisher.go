package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/tuiter/tuiter/internal/domain/contract"
)

// SubjectReactionToggled carries one message per completed toggle.
const SubjectReactionToggled = "reactions.toggled"

type conn interface {
	Publish(subject string, data []byte) error
}

type Publisher struct {
	conn   conn
	nc     *nats.Conn
	logger *zap.Logger
}

var _ contract.IReactionEventPublisher = (*Publisher)(nil)

func NewPublisher(url string, log *zap.Logger) (*Publisher, error) {
	log.Info("NATS publisher connecting", zap.String("url", url))

	opts := []nats.Option{
		nats.Name("tuiter NATS publisher"),
		nats.Timeout(10 * time.Second),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error("NATS error", zap.Error(err))
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Info("NATS connection closed")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	log.Info("NATS publisher connected", zap.String("url", nc.ConnectedUrl()))

	return &Publisher{conn: nc, nc: nc, logger: log.Named("nats")}, nil
}

func (p *Publisher) PublishReactionToggled(_ context.Context, event contract.ReactionToggled) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", SubjectReactionToggled, err)
	}
	if err := p.conn.Publish(SubjectReactionToggled, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", SubjectReactionToggled, err)
	}
	p.logger.Debug("published reaction event",
		zap.String("tuit_id", event.TuitID),
		zap.String("kind", string(event.Kind)),
		zap.Bool("active", event.Active),
	)
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Error("failed to drain NATS connection", zap.Error(err))
	}
	p.nc.Close()
}
