package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/blockchaininfo"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/tracker"
)

var (
	errBadRequest     = errors.New("bad request")
	errUnknownChannel = errors.New("unknown notification channel")
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusCode maps domain errors onto HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, bitcoin.ErrInvalidTxID),
		errors.Is(err, service.ErrMissingTxID),
		errors.Is(err, service.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrNotTracking),
		errors.Is(err, service.ErrUnknownCommand),
		errors.Is(err, errUnknownChannel):
		return http.StatusNotFound
	case errors.Is(err, blockchaininfo.ErrRateLimited):
		return http.StatusServiceUnavailable
	case errors.Is(err, blockchaininfo.ErrNotFoundOrNetwork),
		errors.Is(err, blockchaininfo.ErrEmptyListing),
		errors.Is(err, bitcoin.ErrEmptyMempool):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrHistoryDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusCode(err), errorResponse{Error: err.Error()})
}
