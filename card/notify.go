package card

import (
	"go.uber.org/zap"

	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/model"
)

// Notifier surfaces dispatch outcomes to the user
type Notifier interface {
	Notify(n model.Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface
type NotifierFunc func(n model.Notification)

func (f NotifierFunc) Notify(n model.Notification) {
	f(n)
}

// LogNotifier writes notifications to a zap logger. Destructive ones go out at error level.
type LogNotifier struct {
	Log *zap.Logger
}

// NewLogNotifier uses the global logger when l is nil
func NewLogNotifier(l *zap.Logger) *LogNotifier {
	if l == nil {
		l = logger.GetLogger()
	}
	return &LogNotifier{Log: l}
}

func (n *LogNotifier) Notify(note model.Notification) {
	fields := []zap.Field{
		zap.String("description", note.Description),
		zap.String("severity", string(note.Severity)),
	}
	if note.Severity == model.SeverityDestructive {
		n.Log.Error(note.Title, fields...)
		return
	}
	n.Log.Info(note.Title, fields...)
}
