package model

import (
	"encoding/json"
	"time"
)

// NotificationPreferences selects which channels deliver notifications.
type NotificationPreferences struct {
	Visual bool `json:"visual"`
	Audio  bool `json:"audio"`
}

// DefaultNotificationPreferences is used when nothing valid is stored.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Visual: true, Audio: false}
}

// Any reports whether at least one channel is enabled.
func (p NotificationPreferences) Any() bool {
	return p.Visual || p.Audio
}

// NotificationRecord is a history entry. Timestamps are stored as unix seconds.
type NotificationRecord struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"-"`
}

type notificationRecordJSON struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// MarshalJSON encodes the record as {message, timestamp}.
func (r NotificationRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(notificationRecordJSON{
		Message:   r.Message,
		Timestamp: r.Timestamp.Unix(),
	})
}

// UnmarshalJSON decodes the record from {message, timestamp}.
func (r *NotificationRecord) UnmarshalJSON(data []byte) error {
	var raw notificationRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Message = raw.Message
	r.Timestamp = time.Unix(raw.Timestamp, 0).UTC()
	return nil
}

// Notification is a delivered notification with the channels it was sent on.
type Notification struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Visual    bool      `json:"visual"`
	Audio     bool      `json:"audio"`
}

// Record converts the notification to a history entry.
func (n Notification) Record() NotificationRecord {
	return NotificationRecord{Message: n.Message, Timestamp: n.Timestamp}
}
