package push

import (
	"log"
	"sync"

	"swiftdrop/internal/domain"
)

// ConsoleNotifier renders local notifications to a logger. It stands in
// for the platform notification surface in the CLI front-ends.
type ConsoleNotifier struct {
	log *log.Logger

	mu       sync.Mutex
	channels map[string]domain.NotificationChannel
}

func NewConsoleNotifier(l *log.Logger) *ConsoleNotifier {
	if l == nil {
		l = log.Default()
	}
	return &ConsoleNotifier{log: l, channels: make(map[string]domain.NotificationChannel)}
}

// EnsureChannel records the channel; re-creating an existing one is a no-op.
func (n *ConsoleNotifier) EnsureChannel(ch domain.NotificationChannel) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.channels[ch.ID]; !ok {
		n.channels[ch.ID] = ch
		n.log.Printf("notify: channel %q created", ch.ID)
	}
	return nil
}

// Post prints the notification.
func (n *ConsoleNotifier) Post(note domain.LocalNotification) error {
	n.log.Printf("notify: [%s] %s: %s", note.ChannelID, note.Title, note.Body)
	return nil
}

// Compile-time assertion that ConsoleNotifier implements domain.Notifier.
var _ domain.Notifier = (*ConsoleNotifier)(nil)
