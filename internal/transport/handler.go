package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

const (
	maxBodyBytes     = 1 << 16
	defaultKeepalive = 10 * time.Second
	streamBuffer     = 16
)

// Handler serves the txwatch HTTP API.
type Handler struct {
	svc       Service
	bus       *events.Bus
	logger    *zap.Logger
	keepalive time.Duration
}

// NewHandler wires the HTTP API to svc. Stream events are read from bus.
func NewHandler(svc Service, bus *events.Bus, logger *zap.Logger) *Handler {
	return &Handler{
		svc:       svc,
		bus:       bus,
		logger:    logger.Named("http"),
		keepalive: defaultKeepalive,
	}
}

// Register installs the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/track", h.track)
	mux.HandleFunc("DELETE /api/v1/track", h.stopTracking)
	mux.HandleFunc("GET /api/v1/status", h.status)
	mux.HandleFunc("POST /api/v1/refresh", h.refresh)
	mux.HandleFunc("GET /api/v1/transactions/latest-unconfirmed", h.latestUnconfirmed)
	mux.HandleFunc("GET /api/v1/transactions/{txid}", h.transaction)
	mux.HandleFunc("GET /api/v1/settings", h.settings)
	mux.HandleFunc("PUT /api/v1/settings", h.updateSettings)
	mux.HandleFunc("POST /api/v1/settings/{channel}/toggle", h.toggle)
	mux.HandleFunc("GET /api/v1/notifications", h.notifications)
	mux.HandleFunc("DELETE /api/v1/notifications", h.clearNotifications)
	mux.HandleFunc("GET /api/v1/snapshots/{txid}", h.snapshots)
	mux.HandleFunc("POST /api/v1/commands/{name}", h.command)
	mux.HandleFunc("GET /api/v1/stream", h.stream)
}

type trackRequest struct {
	TxID string `json:"txid"`
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snapshot, err := h.svc.TrackTransaction(r.Context(), req.TxID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, snapshot)
}

func (h *Handler) stopTracking(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.StopTracking(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.GetStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) latestUnconfirmed(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.GetLatestTransaction(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *Handler) transaction(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.TransactionSummary(r.Context(), r.PathValue("txid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetNotificationSettings(r.Context()))
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var prefs model.NotificationPreferences
	if err := decodeBody(r, &prefs); err != nil {
		writeError(w, err)
		return
	}
	next, err := h.svc.UpdateNotificationSettings(r.Context(), prefs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	var (
		next model.NotificationPreferences
		err  error
	)
	switch channel := r.PathValue("channel"); channel {
	case "visual":
		next, err = h.svc.ToggleVisual(r.Context())
	case "audio":
		next, err = h.svc.ToggleAudio(r.Context())
	default:
		err = fmt.Errorf("%w: %q", errUnknownChannel, channel)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetNotificationHistory(r.Context()))
}

func (h *Handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearNotificationHistory(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) snapshots(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, fmt.Errorf("%w: limit: %v", errBadRequest, err))
			return
		}
		limit = v
	}
	entries, err := h.svc.SnapshotHistory(r.Context(), r.PathValue("txid"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) command(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if len(payload) > 0 && !json.Valid(payload) {
		writeError(w, fmt.Errorf("%w: body is not valid JSON", errBadRequest))
		return
	}
	result, err := h.svc.Dispatch(r.Context(), r.PathValue("name"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
