package notify

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
)

const (
	visualEnabledMessage = "Visual notifications enabled"
	audioEnabledMessage  = "Audio notifications enabled"
)

// Notifier records notifications and delivers them on the enabled channels.
type Notifier struct {
	prefs   *Preferences
	history *History
	bus     *events.Bus
	logger  *zap.Logger
	now     func() time.Time
}

// NewNotifier constructs a Notifier.
func NewNotifier(prefs *Preferences, history *History, bus *events.Bus, logger *zap.Logger) *Notifier {
	return &Notifier{
		prefs:   prefs,
		history: history,
		bus:     bus,
		logger:  logger.Named("notifier"),
		now:     time.Now,
	}
}

// Notify records message in the history and publishes it with the current
// channel flags. Nothing is published when both channels are disabled.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	prefs := n.prefs.Get()
	notification := model.Notification{
		Message:   message,
		Timestamp: n.now().UTC(),
		Visual:    prefs.Visual,
		Audio:     prefs.Audio,
	}

	err := n.history.Add(ctx, notification.Record())
	if err != nil {
		n.logger.Warn("history not persisted", zap.Error(err))
	}

	if !prefs.Any() {
		n.logger.Debug("notification suppressed, all channels disabled", zap.String("message", message))
		return err
	}
	if n.bus != nil {
		n.bus.Notification.Publish(notification)
	}
	n.logger.Info("notification", zap.String("message", message), zap.Bool("visual", prefs.Visual), zap.Bool("audio", prefs.Audio))
	return err
}

// Preferences returns the current channel selection.
func (n *Notifier) Preferences() model.NotificationPreferences {
	return n.prefs.Get()
}

// SetPreferences replaces both flags. Each channel that goes from disabled to
// enabled gets a test notification.
func (n *Notifier) SetPreferences(ctx context.Context, next model.NotificationPreferences) (model.NotificationPreferences, error) {
	return n.update(ctx, func(model.NotificationPreferences) model.NotificationPreferences {
		return next
	})
}

// SetVisual enables or disables the visual channel.
func (n *Notifier) SetVisual(ctx context.Context, on bool) (model.NotificationPreferences, error) {
	return n.update(ctx, func(p model.NotificationPreferences) model.NotificationPreferences {
		p.Visual = on
		return p
	})
}

// SetAudio enables or disables the audio channel.
func (n *Notifier) SetAudio(ctx context.Context, on bool) (model.NotificationPreferences, error) {
	return n.update(ctx, func(p model.NotificationPreferences) model.NotificationPreferences {
		p.Audio = on
		return p
	})
}

// ToggleVisual flips the visual channel.
func (n *Notifier) ToggleVisual(ctx context.Context) (model.NotificationPreferences, error) {
	return n.update(ctx, func(p model.NotificationPreferences) model.NotificationPreferences {
		p.Visual = !p.Visual
		return p
	})
}

// ToggleAudio flips the audio channel.
func (n *Notifier) ToggleAudio(ctx context.Context) (model.NotificationPreferences, error) {
	return n.update(ctx, func(p model.NotificationPreferences) model.NotificationPreferences {
		p.Audio = !p.Audio
		return p
	})
}

// History returns the recorded notifications, newest first.
func (n *Notifier) History() []model.NotificationRecord {
	return n.history.List()
}

// ClearHistory removes every recorded notification.
func (n *Notifier) ClearHistory(ctx context.Context) error {
	return n.history.Clear(ctx)
}

func (n *Notifier) update(ctx context.Context, fn func(model.NotificationPreferences) model.NotificationPreferences) (model.NotificationPreferences, error) {
	prev, next, err := n.prefs.Update(ctx, fn)
	if err != nil {
		n.logger.Warn("preferences not persisted", zap.Error(err))
	}

	if next.Visual && !prev.Visual {
		if nerr := n.Notify(ctx, visualEnabledMessage); nerr != nil && err == nil {
			err = nerr
		}
	}
	if next.Audio && !prev.Audio {
		if nerr := n.Notify(ctx, audioEnabledMessage); nerr != nil && err == nil {
			err = nerr
		}
	}
	return next, err
}
