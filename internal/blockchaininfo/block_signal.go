package blockchaininfo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/clock"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const DefaultWebsocketURL = "wss://ws.blockchain.info/inv"

// BlockSignalConfig configures the new-block websocket subscription.
type BlockSignalConfig struct {
	URL               string
	ReconnectDelay    time.Duration
	MaxReconnectDelay time.Duration
	PingInterval      time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
}

// DefaultBlockSignalConfig returns defaults for the public websocket feed.
func DefaultBlockSignalConfig() BlockSignalConfig {
	return BlockSignalConfig{
		URL:               DefaultWebsocketURL,
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 30 * time.Second,
		PingInterval:      30 * time.Second,
		ReadTimeout:       90 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}

// backoff doubles the reconnect delay up to max. reset starts over from
// initial once a session has subscribed.
type backoff struct {
	initial, max, next time.Duration
}

func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{initial: initial, max: max, next: initial}
}

func (b *backoff) reset() {
	b.next = b.initial
}

func (b *backoff) delay() time.Duration {
	d := b.next
	b.next = min(b.next*2, b.max)
	return d
}

type wsOp struct {
	Op string `json:"op"`
}

type wsBlockMessage struct {
	Op string `json:"op"`
	X  struct {
		Height uint64 `json:"height"`
		Hash   string `json:"hash"`
	} `json:"x"`
}

// StartBlockSignal subscribes to new blocks and returns a channel that
// receives a value whenever a block arrives. Signals are coalesced: the
// channel holds at most one pending value. The subscription reconnects with
// backoff until ctx is canceled.
func StartBlockSignal(ctx context.Context, cfg BlockSignalConfig, logger *zap.Logger) <-chan struct{} {
	if cfg.URL == "" {
		cfg.URL = DefaultWebsocketURL
	}
	notify := make(chan struct{}, 1)

	go func() {
		retry := newBackoff(cfg.ReconnectDelay, cfg.MaxReconnectDelay)
		for {
			err := subscribeBlocks(ctx, cfg, logger, notify, retry.reset)
			if ctx.Err() != nil {
				return
			}
			delay := retry.delay()
			logger.Warn("block websocket disconnected", zap.Error(err), zap.Duration("reconnect_in", delay))
			if clock.SleepWithContext(ctx, delay) != nil {
				return
			}
		}
	}()

	return notify
}

func subscribeBlocks(ctx context.Context, cfg BlockSignalConfig, logger *zap.Logger, notify chan<- struct{}, subscribed func()) error {
	dialer := websocket.Dialer{HandshakeTimeout: cfg.WriteTimeout}
	conn, _, err := dialer.DialContext(ctx, cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.URL, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	write := func(op string) error {
		if err := conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout)); err != nil {
			return err
		}
		return conn.WriteJSON(wsOp{Op: op})
	}
	if err := write("blocks_sub"); err != nil {
		return fmt.Errorf("subscribe blocks: %w", err)
	}
	logger.Info("subscribed to new blocks", zap.String("url", cfg.URL))
	subscribed()

	readErr := make(chan error, 1)
	go func() {
		for {
			if cfg.ReadTimeout > 0 {
				if err := conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout)); err != nil {
					readErr <- err
					return
				}
			}
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			var msg wsBlockMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				logger.Debug("skip malformed websocket message", zap.Error(err))
				continue
			}
			if msg.Op != "block" {
				continue
			}
			logger.Debug("new block", zap.Uint64("height", msg.X.Height), zap.String("hash", msg.X.Hash))
			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	var pingC <-chan time.Time
	if cfg.PingInterval > 0 {
		ping := time.NewTicker(cfg.PingInterval)
		defer ping.Stop()
		pingC = ping.C
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(cfg.WriteTimeout))
			return ctx.Err()
		case err := <-readErr:
			return fmt.Errorf("read: %w", err)
		case <-pingC:
			if err := write("ping"); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		}
	}
}
