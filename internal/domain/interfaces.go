package domain

import "context"

// TokenStore persists the session token and cached identity. Reads report
// presence, never failure: a corrupt or unreadable entry is "absent".
type TokenStore interface {
	SaveTokens(t AuthTokens) error
	Token() (string, bool)
	RefreshToken() (string, bool)
	SaveUser(u User) error
	User() (User, bool)
	SaveUserType(role UserRole) error
	UserType() (UserRole, bool)
	Clear() error
	LoggedIn() bool
}

// AuthRepository covers login, registration and push-token forwarding.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (AuthSession, error)
	Register(ctx context.Context, req RegisterRequest) (AuthSession, error)
	UpdatePushToken(ctx context.Context, token string) error
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     UserRole
}

// CatalogRepository lists stores and their products.
type CatalogRepository interface {
	Stores(ctx context.Context) ([]Store, error)
	Products(ctx context.Context, storeID int64) ([]Product, error)
}

// OrderRepository places and reads back customer orders.
type OrderRepository interface {
	PlaceOrder(ctx context.Context, items []OrderItem, storeID int64, address string) (Order, error)
	Orders(ctx context.Context) ([]Order, error)
	Order(ctx context.Context, id int64) (Order, error)
}

// DeliveryTracker fetches the latest tracking sample for an order. The
// tracking coordinator polls this.
type DeliveryTracker interface {
	TrackDelivery(ctx context.Context, orderID int64) (DeliveryLocation, error)
}

// RouteProvider computes a route and ETA between two coordinates.
type RouteProvider interface {
	Route(ctx context.Context, from, to LatLng) (DeliveryRoute, error)
}

// Notifier is the device-side notification surface the push bridge drives.
// EnsureChannel must be idempotent.
type Notifier interface {
	EnsureChannel(ch NotificationChannel) error
	Post(n LocalNotification) error
}

// ChatPublisher is the producer side of the chat notification relay.
type ChatPublisher interface {
	Publish(msg ChatMessage)
}
