package push_test

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"swiftdrop/internal/domain"
	"swiftdrop/internal/push"
)

type recordingNotifier struct {
	mu       sync.Mutex
	channels []domain.NotificationChannel
	posted   []domain.LocalNotification
}

func (n *recordingNotifier) EnsureChannel(ch domain.NotificationChannel) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.channels = append(n.channels, ch)
	return nil
}

func (n *recordingNotifier) Post(note domain.LocalNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posted = append(n.posted, note)
	return nil
}

type fakeAuth struct {
	mu     sync.Mutex
	tokens []string
	err    error
}

func (a *fakeAuth) Login(ctx context.Context, email, password string) (domain.AuthSession, error) {
	return domain.AuthSession{}, nil
}

func (a *fakeAuth) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthSession, error) {
	return domain.AuthSession{}, nil
}

func (a *fakeAuth) UpdatePushToken(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens = append(a.tokens, token)
	return a.err
}

type session bool

func (s session) Token() (string, bool) { return "tok", bool(s) }

type capturePublisher struct {
	mu   sync.Mutex
	msgs []domain.ChatMessage
}

func (p *capturePublisher) Publish(m domain.ChatMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, m)
}

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func TestHandlePush_DefaultsAndData(t *testing.T) {
	n := &recordingNotifier{}
	b := push.NewBridge(n, &fakeAuth{}, session(true), nil, quiet())

	err := b.HandlePush(domain.PushPayload{
		Data: map[string]string{"order_id": "42", "type": "order_update"},
	})
	if err != nil {
		t.Fatalf("handle push: %v", err)
	}

	if len(n.posted) != 1 {
		t.Fatalf("posted %d notifications, want 1", len(n.posted))
	}
	got := n.posted[0]
	if got.Title != push.DefaultTitle || got.Body != push.DefaultBody {
		t.Errorf("defaults not applied: %+v", got)
	}
	if got.OrderID != 42 || got.Kind != "order_update" {
		t.Errorf("structured data lost: %+v", got)
	}
	if got.ID == "" || got.ChannelID != push.Channel.ID {
		t.Errorf("notification identity wrong: %+v", got)
	}
}

func TestHandlePush_ChannelCreatedOnce(t *testing.T) {
	n := &recordingNotifier{}
	b := push.NewBridge(n, &fakeAuth{}, session(true), nil, quiet())

	for i := 0; i < 3; i++ {
		if err := b.HandlePush(domain.PushPayload{Title: "t", Body: "b"}); err != nil {
			t.Fatalf("handle push: %v", err)
		}
	}
	if len(n.channels) != 1 {
		t.Fatalf("EnsureChannel called %d times, want 1", len(n.channels))
	}
}

func TestHandlePush_ChatPayloadReachesRelay(t *testing.T) {
	n := &recordingNotifier{}
	p := &capturePublisher{}
	b := push.NewBridge(n, &fakeAuth{}, session(true), p, quiet())

	err := b.HandlePush(domain.PushPayload{
		Title: "New message",
		Data: map[string]string{
			"type": "chat_message", "room_id": "order-42", "sender": "Kim", "body": "On my way",
		},
	})
	if err != nil {
		t.Fatalf("handle push: %v", err)
	}

	if len(p.msgs) != 1 {
		t.Fatalf("published %d chat messages, want 1", len(p.msgs))
	}
	m := p.msgs[0]
	if m.RoomID != "order-42" || m.Sender != "Kim" || m.Body != "On my way" {
		t.Errorf("chat message = %+v", m)
	}
	if m.SentAt.After(time.Now()) {
		t.Errorf("SentAt in the future: %v", m.SentAt)
	}
}

func TestHandleNewToken_SkipsWithoutSession(t *testing.T) {
	a := &fakeAuth{}
	b := push.NewBridge(&recordingNotifier{}, a, session(false), nil, quiet())

	b.HandleNewToken(context.Background(), "device-tok")
	if len(a.tokens) != 0 {
		t.Fatal("token forwarded without a session")
	}
}

func TestHandleNewToken_ForwardsAndSwallowsErrors(t *testing.T) {
	a := &fakeAuth{err: errors.New("backend down")}
	b := push.NewBridge(&recordingNotifier{}, a, session(true), nil, quiet())

	b.HandleNewToken(context.Background(), "device-tok") // must not panic or propagate
	if len(a.tokens) != 1 || a.tokens[0] != "device-tok" {
		t.Fatalf("forwarded tokens = %v", a.tokens)
	}
}
