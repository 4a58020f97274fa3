package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification kinds. Each maps to a fixed icon and color in the view.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// noticeTTL is how long a notification stays on screen.
const noticeTTL = 3 * time.Second

// Notification is one transient on-screen message. Concurrent notifications
// stack and are independently timed; they are never deduplicated or queued.
type Notification struct {
	ID      int
	Message string
	Kind    string
}

type noticeExpiredMsg struct{ id int }

// notify appends a notification and returns the command that will dismiss
// it after its fixed lifetime.
func (m *AppModel) notify(message, kind string) tea.Cmd {
	m.nextNoticeID++
	id := m.nextNoticeID
	m.Notifications = append(m.Notifications, Notification{
		ID:      id,
		Message: message,
		Kind:    kind,
	})
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// expireNotice drops the notification with the given id, leaving the rest
// of the stack alone.
func (m *AppModel) expireNotice(id int) {
	kept := make([]Notification, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	m.Notifications = kept
}
