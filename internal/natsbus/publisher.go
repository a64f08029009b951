// Package natsbus forwards tracker events to NATS JetStream.
package natsbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

const (
	// StreamName is the JetStream stream holding txwatch events.
	StreamName = "TXWATCH"
	// StreamSubjects matches every subject published here.
	StreamSubjects = "txwatch.>"
	// NotificationSubject carries delivered notifications.
	NotificationSubject = "txwatch.notifications"

	streamRetention = 7 * 24 * time.Hour
	eventBuffer     = 64
)

// StatusSubject returns the subject for snapshots of txid.
func StatusSubject(txid string) string {
	return "txwatch.status." + txid
}

// Publisher writes status snapshots and notifications to JetStream.
type Publisher struct {
	nc      *nats.Conn
	js      JetStream
	metrics Metrics
	logger  *zap.Logger
}

// Connect dials NATS, ensures the stream exists and returns a Publisher.
func Connect(ctx context.Context, url string, metrics Metrics, logger *zap.Logger) (*Publisher, error) {
	if url == "" {
		return nil, errors.New("nats url is required")
	}

	nc, err := nats.Connect(url,
		nats.Name("txwatch-publisher"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	p := NewPublisher(js, metrics, logger)
	p.nc = nc
	if err := p.ensureStream(ctx, js); err != nil {
		nc.Close()
		return nil, err
	}

	p.logger.Info("nats publisher initialized", zap.String("url", url), zap.String("stream", StreamName))
	return p, nil
}

// NewPublisher wraps an existing JetStream context.
func NewPublisher(js JetStream, metrics Metrics, logger *zap.Logger) *Publisher {
	return &Publisher{
		js:      js,
		metrics: metrics,
		logger:  logger.Named("natsbus"),
	}
}

func (p *Publisher) ensureStream(ctx context.Context, js jetstream.JetStream) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Bitcoin transaction confirmation events",
		Subjects:    []string{StreamSubjects},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      streamRetention,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("ensure stream %s: %w", StreamName, err)
	}
	return nil
}

// PublishStatus publishes a snapshot to its per-transaction subject.
func (p *Publisher) PublishStatus(ctx context.Context, snapshot model.StatusSnapshot) error {
	return p.publish(ctx, "status", StatusSubject(snapshot.TxID), snapshot)
}

// PublishNotification publishes a delivered notification.
func (p *Publisher) PublishNotification(ctx context.Context, notification model.Notification) error {
	return p.publish(ctx, "notification", NotificationSubject, notification)
}

// Run forwards settled snapshots and notifications from bus until ctx is done.
func (p *Publisher) Run(ctx context.Context, bus *events.Bus) error {
	statuses, unsubscribeStatus := bus.Status.Subscribe(eventBuffer)
	defer unsubscribeStatus()
	notifications, unsubscribeNotifications := bus.Notification.Subscribe(eventBuffer)
	defer unsubscribeNotifications()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snapshot := <-statuses:
			if snapshot.State == model.PollFetching || snapshot.State == model.PollIdle {
				continue
			}
			if err := p.PublishStatus(ctx, snapshot); err != nil {
				p.logger.Warn("status not published", zap.String("txid", snapshot.TxID), zap.Error(err))
			}
		case notification := <-notifications:
			if err := p.PublishNotification(ctx, notification); err != nil {
				p.logger.Warn("notification not published", zap.Error(err))
			}
		}
	}
}

// Close drains the NATS connection.
func (p *Publisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}

func (p *Publisher) publish(ctx context.Context, kind, subject string, v any) (err error) {
	defer func() {
		if p.metrics != nil {
			p.metrics.ObservePublish(kind, err)
		}
	}()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", kind, err)
	}
	if _, err = p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("published", zap.String("subject", subject))
	return nil
}
