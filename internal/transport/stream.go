package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type countdownEvent struct {
	RemainingSeconds int64 `json:"remaining_seconds"`
}

type connectedEvent struct {
	Time time.Time `json:"time"`
}

// stream pushes bus events to the client as server-sent events until the
// request context ends.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	status, unsubStatus := h.bus.Status.Subscribe(streamBuffer)
	defer unsubStatus()
	txs, unsubTxs := h.bus.Transaction.Subscribe(streamBuffer)
	defer unsubTxs()
	settings, unsubSettings := h.bus.Settings.Subscribe(streamBuffer)
	defer unsubSettings()
	notifications, unsubNotifications := h.bus.Notification.Subscribe(streamBuffer)
	defer unsubNotifications()
	countdown, unsubCountdown := h.bus.Countdown.Subscribe(streamBuffer)
	defer unsubCountdown()

	// The server write timeout would cut long-lived streams.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	logger := h.logger.With(zap.String("remote", r.RemoteAddr))
	logger.Debug("stream opened")
	defer logger.Debug("stream closed")

	if err := writeEvent(w, "connected", connectedEvent{Time: time.Now().UTC()}); err != nil {
		return
	}
	if snapshot, err := h.svc.GetStatus(ctx); err == nil {
		if err := writeEvent(w, "status", snapshot); err != nil {
			return
		}
	}
	if err := writeEvent(w, "settings", h.svc.GetNotificationSettings(ctx)); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			return
		case v, ok := <-status:
			if !ok {
				return
			}
			err = writeEvent(w, "status", v)
		case v, ok := <-txs:
			if !ok {
				return
			}
			err = writeEvent(w, "transaction", v)
		case v, ok := <-settings:
			if !ok {
				return
			}
			err = writeEvent(w, "settings", v)
		case v, ok := <-notifications:
			if !ok {
				return
			}
			err = writeEvent(w, "notification", v)
		case v, ok := <-countdown:
			if !ok {
				return
			}
			err = writeEvent(w, "countdown", countdownEvent{RemainingSeconds: int64(v / time.Second)})
		case <-ticker.C:
			_, err = io.WriteString(w, ": keepalive\n\n")
		}
		if err != nil {
			logger.Debug("stream write failed", zap.Error(err))
			return
		}
		flusher.Flush()
	}
}

func writeEvent(w io.Writer, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
