package controllers

import "log/slog"

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "INFO"
	NoticeWarning NoticeLevel = "WARNING"
	NoticeError   NoticeLevel = "ERROR"
)

// Notice is a transient, dismissible message for the user, e.g. a failed
// mutation. Listing failures are not announced this way - they render
// through the Error phase of the snapshot instead.
type Notice struct {
	Level   NoticeLevel
	Message string
}

type Notifier interface {
	Notify(notice Notice)
}

type slogNotifier struct{}

// NewSlogNotifier returns a notifier that writes notices to the
// default slog logger. Embedders replace it with their own surface.
func NewSlogNotifier() Notifier {
	return slogNotifier{}
}

func (n slogNotifier) Notify(notice Notice) {

	switch notice.Level {
	case NoticeError:
		slog.Error(notice.Message)
	case NoticeWarning:
		slog.Warn(notice.Message)
	default:
		slog.Info(notice.Message)
	}
}
