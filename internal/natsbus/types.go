package natsbus

import (
	"context"

	"github.com/nats-io/nats.go/jetstream"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// JetStream is the publishing subset of jetstream.JetStream.
	JetStream interface {
		Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	}
	Metrics interface {
		ObservePublish(kind string, err error)
	}
)
