package domain

import "time"

// UserRole distinguishes the three account kinds the backend issues.
type UserRole string

const (
	RoleCustomer        UserRole = "customer"
	RoleDeliveryPartner UserRole = "delivery_partner"
	RoleAdmin           UserRole = "admin"
)

// AuthTokens are issued at login/register. The access token is attached to
// every authenticated call; the refresh token is persisted but no client
// code path spends it.
type AuthTokens struct {
	Access  string
	Refresh string
}

// User is the identity returned at login, replaced wholesale on the next one.
type User struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  UserRole
}

// AdminUser is the identity returned by the admin login endpoint.
type AdminUser struct {
	ID          int64
	Name        string
	Email       string
	IsSuperuser bool
}

// AuthSession bundles the identity and tokens a login call yields.
type AuthSession struct {
	User   User
	Tokens AuthTokens
}

// AdminSession is the admin counterpart of AuthSession.
type AdminSession struct {
	User   AdminUser
	Tokens AuthTokens
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// Store is a marketplace storefront customers browse.
type Store struct {
	ID       int64
	Name     string
	Category string
	Address  string
	IsOpen   bool
	Rating   float64
	Location *LatLng
}

// Product is a single listing inside a store.
type Product struct {
	ID          int64
	StoreID     int64
	Name        string
	Description string
	Price       float64
	MaxQuantity int
	InStock     bool
	ImageURL    string
}

// Order is server-authoritative once created.
type Order struct {
	ID              int64
	StoreID         int64
	StoreName       string
	Status          OrderStatus
	Items           []OrderItem
	TotalPrice      float64
	DeliveryAddress string
	CreatedAt       time.Time
}

// OrderItem snapshots name and price at the time of ordering.
type OrderItem struct {
	ProductID int64
	Name      string
	Price     float64
	Quantity  int
}

// DeliveryPartner is the courier identity shown to customers and admins.
type DeliveryPartner struct {
	ID          int64
	Name        string
	Phone       string
	Rating      float64
	IsAvailable bool
}

// AssignmentStatus is the raw tri-flag status the backend reports for an
// assignment. The flags are expected to be sticky (once true, stays true)
// but the wire format does not enforce that; the tracking coordinator does.
type AssignmentStatus struct {
	PickedUp       bool
	OutForDelivery bool
	Delivered      bool
}

// DeliveryAssignment is one order handed to a delivery partner. The phase
// timestamps are nil until that phase occurs and are monotonic when present:
// AssignedAt <= PickedUpAt <= DeliveredAt.
type DeliveryAssignment struct {
	ID            int64
	OrderID       int64
	Status        string
	Address       string
	CustomerName  string
	CustomerPhone string
	Amount        float64
	AssignedAt    time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}

// DeliveryLocation is one tracking sample for an order. Location is nil
// until the partner has a GPS fix.
type DeliveryLocation struct {
	Partner  DeliveryPartner
	Location *LatLng
	Status   AssignmentStatus
	Message  string
}

// DeliveryRoute is a computed path from the partner to the destination.
type DeliveryRoute struct {
	Points []LatLng
	ETA    time.Duration
	Meters float64
}

// AnimatedLocation is the smoothed marker position derived from successive
// tracking samples. Progress runs 0..1 from the previous displayed position
// toward Target; Bearing is the initial compass heading toward Target.
type AnimatedLocation struct {
	Current  LatLng
	Target   LatLng
	Bearing  float64
	Progress float64
}

// TrackingState is the composite view the tracking coordinator emits.
type TrackingState struct {
	Location           DeliveryLocation
	Route              *DeliveryRoute
	Animated           *AnimatedLocation
	Phase              TrackingPhase
	ConnectionIssue    bool
	ShouldStopTracking bool
}

// ChatMessage is one pushed chat message fanned out by the relay.
// Observers filter by RoomID themselves.
type ChatMessage struct {
	ID     string
	RoomID string
	Sender string
	Body   string
	SentAt time.Time
}

// PushPayload is the raw remote push the bridge receives.
type PushPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// NotificationChannel groups local notifications for presentation.
type NotificationChannel struct {
	ID          string
	Name        string
	Description string
}

// LocalNotification is what the bridge posts through a Notifier.
type LocalNotification struct {
	ID        string
	ChannelID string
	Title     string
	Body      string
	OrderID   int64
	Kind      string
}

// CourierDashboard summarises a partner's day.
type CourierDashboard struct {
	ActiveAssignments    int
	CompletedToday       int
	EarningsToday        float64
	AverageDeliveryMins  float64
}

// Earnings is the partner's earnings breakdown.
type Earnings struct {
	Today     float64
	ThisWeek  float64
	ThisMonth float64
	Total     float64
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	TotalOrders       int
	PendingOrders     int
	ActiveDeliveries  int
	CompletedToday    int
	RevenueToday      float64
	AvailablePartners int
}
