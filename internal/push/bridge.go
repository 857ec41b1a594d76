// Package push receives remote push payloads and turns them into local
// notifications, forwards fresh device tokens to the backend, and feeds
// chat pushes into the chat relay.
package push

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"swiftdrop/internal/domain"
)

// Channel is the notification channel every bridge notification lands in.
var Channel = domain.NotificationChannel{
	ID:          "swiftdrop_orders",
	Name:        "Order updates",
	Description: "Order status, delivery progress and chat messages",
}

// Defaults used when a payload arrives without title or body.
const (
	DefaultTitle = "SwiftDrop"
	DefaultBody  = "You have a new update"
)

// Data keys the backend sets on structured pushes.
const (
	dataKeyType    = "type"
	dataKeyOrderID = "order_id"
	dataKeyRoomID  = "room_id"
	dataKeySender  = "sender"
	dataKeyBody    = "body"

	kindChatMessage = "chat_message"
)

// SessionSource reports whether a session token is present. The token
// store satisfies this.
type SessionSource interface {
	Token() (string, bool)
}

// Bridge wires remote pushes to the local notification surface and the
// chat relay.
type Bridge struct {
	notifier domain.Notifier
	auth     domain.AuthRepository
	session  SessionSource
	chat     domain.ChatPublisher
	log      *log.Logger

	channelOnce sync.Once
	channelErr  error
}

// NewBridge builds a Bridge. chat may be nil when no chat surface exists
// (the admin app has none).
func NewBridge(notifier domain.Notifier, auth domain.AuthRepository, session SessionSource, chat domain.ChatPublisher, l *log.Logger) *Bridge {
	if l == nil {
		l = log.Default()
	}
	return &Bridge{notifier: notifier, auth: auth, session: session, chat: chat, log: l}
}

// HandlePush turns one remote payload into a local notification. Chat
// payloads are additionally fanned out to the relay. Channel creation is
// idempotent across calls.
func (b *Bridge) HandlePush(p domain.PushPayload) error {
	title, body := p.Title, p.Body
	if title == "" {
		title = DefaultTitle
	}
	if body == "" {
		body = DefaultBody
	}

	var orderID int64
	if raw, ok := p.Data[dataKeyOrderID]; ok {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			orderID = id
		}
	}
	kind := p.Data[dataKeyType]

	if kind == kindChatMessage && b.chat != nil {
		b.chat.Publish(domain.ChatMessage{
			ID:     uuid.NewString(),
			RoomID: p.Data[dataKeyRoomID],
			Sender: p.Data[dataKeySender],
			Body:   firstNonEmpty(p.Data[dataKeyBody], body),
			SentAt: time.Now(),
		})
	}

	b.channelOnce.Do(func() {
		b.channelErr = b.notifier.EnsureChannel(Channel)
	})
	if b.channelErr != nil {
		return b.channelErr
	}

	return b.notifier.Post(domain.LocalNotification{
		ID:        uuid.NewString(),
		ChannelID: Channel.ID,
		Title:     title,
		Body:      body,
		OrderID:   orderID,
		Kind:      kind,
	})
}

// HandleNewToken forwards a fresh device push token to the backend when a
// session exists. With no session it is skipped silently; there is no
// retry queue; the next login re-registers the token. Forwarding failures
// are logged and dropped.
func (b *Bridge) HandleNewToken(ctx context.Context, token string) {
	if _, ok := b.session.Token(); !ok {
		return
	}
	if err := b.auth.UpdatePushToken(ctx, token); err != nil {
		b.log.Printf("push: forward device token: %v", err)
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
