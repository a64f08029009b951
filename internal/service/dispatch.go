package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrUnknownCommand is returned by Dispatch for unrecognized names.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingTxID is returned when a command needs a transaction id.
	ErrMissingTxID = errors.New("transaction id required")
	// ErrInvalidPayload is returned when a command payload cannot be decoded.
	ErrInvalidPayload = errors.New("invalid command payload")
)

// Command names accepted by Dispatch.
const (
	CommandGetLatestTransaction     = "getLatestTransaction"
	CommandTrackTransaction         = "trackTransaction"
	CommandGetStatus                = "getStatus"
	CommandRefresh                  = "refresh"
	CommandStopTracking             = "stopTracking"
	CommandEnableVisual             = "enableVisual"
	CommandDisableVisual            = "disableVisual"
	CommandToggleVisual             = "toggleVisual"
	CommandEnableAudio              = "enableAudio"
	CommandDisableAudio             = "disableAudio"
	CommandToggleAudio              = "toggleAudio"
	CommandGetNotificationSettings  = "getNotificationSettings"
	CommandGetNotificationHistory   = "getNotificationHistory"
	CommandClearNotificationHistory = "clearNotificationHistory"
)

// txPayload accepts both the camel case key used by older clients and txid.
type txPayload struct {
	TxID       string `json:"txid"`
	LegacyTxID string `json:"txId"`
}

func (p txPayload) id() string {
	if p.TxID != "" {
		return p.TxID
	}
	return p.LegacyTxID
}

// Dispatch runs the command called name. payload may be empty.
func (s *Service) Dispatch(ctx context.Context, name string, payload json.RawMessage) (any, error) {
	s.logger.Debug("dispatch", zap.String("command", name))

	switch name {
	case CommandGetLatestTransaction:
		return s.GetLatestTransaction(ctx)
	case CommandTrackTransaction:
		var p txPayload
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, name, err)
			}
		}
		if p.id() == "" {
			return nil, ErrMissingTxID
		}
		return s.TrackTransaction(ctx, p.id())
	case CommandGetStatus:
		return s.GetStatus(ctx)
	case CommandRefresh:
		return nil, s.Refresh(ctx)
	case CommandStopTracking:
		return nil, s.StopTracking(ctx)
	case CommandEnableVisual:
		return s.EnableVisual(ctx)
	case CommandDisableVisual:
		return s.DisableVisual(ctx)
	case CommandToggleVisual:
		return s.ToggleVisual(ctx)
	case CommandEnableAudio:
		return s.EnableAudio(ctx)
	case CommandDisableAudio:
		return s.DisableAudio(ctx)
	case CommandToggleAudio:
		return s.ToggleAudio(ctx)
	case CommandGetNotificationSettings:
		return s.GetNotificationSettings(ctx), nil
	case CommandGetNotificationHistory:
		return s.GetNotificationHistory(ctx), nil
	case CommandClearNotificationHistory:
		return nil, s.ClearNotificationHistory(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}
