package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/itchyny/gojq"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

const confirmationTarget = 6

type countdownEvent struct {
	RemainingSeconds int64 `json:"remaining_seconds"`
}

type eventEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// renderer prints stream events as text lines, or as filtered JSON when a
// jq filter is set.
type renderer struct {
	w  io.Writer
	jq *gojq.Code
	// a countdown line is open and must be ended before the next line.
	pending bool
}

func newRenderer(w io.Writer, jq *gojq.Code) *renderer {
	return &renderer{w: w, jq: jq}
}

func (r *renderer) handle(name string, data json.RawMessage) error {
	if r.jq != nil {
		env, err := json.Marshal(eventEnvelope{Event: name, Data: data})
		if err != nil {
			return err
		}
		return printRawJSON(r.w, env, r.jq)
	}

	switch name {
	case "connected":
		r.line("connected")
	case "status":
		var s model.StatusSnapshot
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode status: %w", err)
		}
		if text := formatStatus(s); text != "" {
			r.line(text)
		}
	case "settings":
		var p model.NotificationPreferences
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode settings: %w", err)
		}
		r.line(fmt.Sprintf("notifications: visual %s, audio %s", onOff(p.Visual), onOff(p.Audio)))
	case "notification":
		var n model.Notification
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode notification: %w", err)
		}
		r.notification(n)
	case "countdown":
		var c countdownEvent
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("decode countdown: %w", err)
		}
		fmt.Fprintf(r.w, "\rnext refresh in %3ds", c.RemainingSeconds)
		r.pending = true
	}
	return nil
}

func (r *renderer) notification(n model.Notification) {
	if n.Visual {
		r.line("* " + n.Message)
	}
	if n.Audio {
		fmt.Fprint(r.w, "\a")
	}
}

func (r *renderer) line(text string) {
	if r.pending {
		fmt.Fprintln(r.w)
		r.pending = false
	}
	fmt.Fprintf(r.w, "[%s] %s\n", time.Now().Format(time.TimeOnly), text)
}

// formatStatus renders settled and failed snapshots; others render empty.
func formatStatus(s model.StatusSnapshot) string {
	switch s.State {
	case model.PollSettled:
		return fmt.Sprintf("%s %s, %d/%d confirmations, latest block %d",
			shortID(s.TxID), s.Status.Label(), min(s.Confirmations, confirmationTarget), confirmationTarget, s.LatestBlock)
	case model.PollFailed:
		return fmt.Sprintf("%s refresh failed: %s", shortID(s.TxID), s.Error)
	default:
		return ""
	}
}

func shortID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "…" + id[len(id)-8:]
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
