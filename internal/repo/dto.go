package repo

import (
	"time"

	"swiftdrop/internal/domain"
)

// Wire DTOs. Field names follow the backend's snake_case contract; the
// map* functions perform the rename into domain values.

type userDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type tokensDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type sessionDTO struct {
	User   userDTO   `json:"user"`
	Tokens tokensDTO `json:"tokens"`
}

type adminUserDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
}

type adminSessionDTO struct {
	User   adminUserDTO `json:"user"`
	Tokens tokensDTO    `json:"tokens"`
}

type latLngDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type storeDTO struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Address  string     `json:"address"`
	IsOpen   bool       `json:"is_open"`
	Rating   float64    `json:"rating"`
	Location *latLngDTO `json:"location"`
}

type productDTO struct {
	ID          int64   `json:"id"`
	StoreID     int64   `json:"store_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	MaxQuantity int     `json:"max_quantity"`
	InStock     bool    `json:"in_stock"`
	ImageURL    string  `json:"image_url"`
}

type orderItemDTO struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderDTO struct {
	ID              int64          `json:"id"`
	StoreID         int64          `json:"store_id"`
	StoreName       string         `json:"store_name"`
	Status          string         `json:"status"`
	Items           []orderItemDTO `json:"items"`
	TotalPrice      float64        `json:"total_price"`
	DeliveryAddress string         `json:"delivery_address"`
	CreatedAt       time.Time      `json:"created_at"`
}

type partnerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"is_available"`
}

type assignmentStatusDTO struct {
	PickedUp       bool `json:"picked_up"`
	OutForDelivery bool `json:"out_for_delivery"`
	Delivered      bool `json:"delivered"`
}

type assignmentDTO struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order"`
	Status        string     `json:"status"`
	Address       string     `json:"address"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Amount        float64    `json:"amount"`
	AssignedAt    time.Time  `json:"assigned_at"`
	PickedUpAt    *time.Time `json:"picked_up_at"`
	DeliveredAt   *time.Time `json:"delivered_at"`
}

type deliveryLocationDTO struct {
	Partner  partnerDTO          `json:"delivery_partner"`
	Location *latLngDTO          `json:"location"`
	Status   assignmentStatusDTO `json:"assignment_status"`
	Message  string              `json:"message"`
}

type courierDashboardDTO struct {
	ActiveAssignments   int     `json:"active_assignments"`
	CompletedToday      int     `json:"completed_today"`
	EarningsToday       float64 `json:"earnings_today"`
	AverageDeliveryMins float64 `json:"average_delivery_minutes"`
}

type earningsDTO struct {
	Today     float64 `json:"today"`
	ThisWeek  float64 `json:"this_week"`
	ThisMonth float64 `json:"this_month"`
	Total     float64 `json:"total"`
}

type dashboardStatsDTO struct {
	TotalOrders       int     `json:"total_orders"`
	PendingOrders     int     `json:"pending_orders"`
	ActiveDeliveries  int     `json:"active_deliveries"`
	CompletedToday    int     `json:"completed_today"`
	RevenueToday      float64 `json:"revenue_today"`
	AvailablePartners int     `json:"available_partners"`
}

// pageDTO is the DRF-style pagination wrapper. Next and Previous are null
// on the first and last pages.
type pageDTO[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Page is a single page of results plus continuation cursors. Nil cursors
// mean no further page in that direction.
type Page[T any] struct {
	Count    int
	Next     *string
	Previous *string
	Results  []T
}

// ---------- mappers ----------

func mapUser(d userDTO) domain.User {
	return domain.User{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone, Role: domain.UserRole(d.Role)}
}

func mapSession(d sessionDTO) domain.AuthSession {
	return domain.AuthSession{
		User:   mapUser(d.User),
		Tokens: domain.AuthTokens{Access: d.Tokens.Access, Refresh: d.Tokens.Refresh},
	}
}

func mapAdminSession(d adminSessionDTO) domain.AdminSession {
	return domain.AdminSession{
		User: domain.AdminUser{
			ID: d.User.ID, Name: d.User.Name, Email: d.User.Email, IsSuperuser: d.User.IsSuperuser,
		},
		Tokens: domain.AuthTokens{Access: d.Tokens.Access, Refresh: d.Tokens.Refresh},
	}
}

func mapLatLng(d *latLngDTO) *domain.LatLng {
	if d == nil {
		return nil
	}
	return &domain.LatLng{Latitude: d.Latitude, Longitude: d.Longitude}
}

func mapStore(d storeDTO) domain.Store {
	return domain.Store{
		ID: d.ID, Name: d.Name, Category: d.Category, Address: d.Address,
		IsOpen: d.IsOpen, Rating: d.Rating, Location: mapLatLng(d.Location),
	}
}

func mapProduct(d productDTO) domain.Product {
	return domain.Product{
		ID: d.ID, StoreID: d.StoreID, Name: d.Name, Description: d.Description,
		Price: d.Price, MaxQuantity: d.MaxQuantity, InStock: d.InStock, ImageURL: d.ImageURL,
	}
}

func mapOrder(d orderDTO) domain.Order {
	items := make([]domain.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = domain.OrderItem{ProductID: it.ProductID, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}
	return domain.Order{
		ID: d.ID, StoreID: d.StoreID, StoreName: d.StoreName,
		Status: domain.OrderStatusFromString(d.Status),
		Items:  items, TotalPrice: d.TotalPrice,
		DeliveryAddress: d.DeliveryAddress, CreatedAt: d.CreatedAt,
	}
}

func mapPartner(d partnerDTO) domain.DeliveryPartner {
	return domain.DeliveryPartner{ID: d.ID, Name: d.Name, Phone: d.Phone, Rating: d.Rating, IsAvailable: d.IsAvailable}
}

func mapAssignment(d assignmentDTO) domain.DeliveryAssignment {
	return domain.DeliveryAssignment{
		ID: d.ID, OrderID: d.OrderID, Status: d.Status, Address: d.Address,
		CustomerName: d.CustomerName, CustomerPhone: d.CustomerPhone, Amount: d.Amount,
		AssignedAt: d.AssignedAt, PickedUpAt: d.PickedUpAt, DeliveredAt: d.DeliveredAt,
	}
}

func mapDeliveryLocation(d deliveryLocationDTO) domain.DeliveryLocation {
	return domain.DeliveryLocation{
		Partner:  mapPartner(d.Partner),
		Location: mapLatLng(d.Location),
		Status: domain.AssignmentStatus{
			PickedUp:       d.Status.PickedUp,
			OutForDelivery: d.Status.OutForDelivery,
			Delivered:      d.Status.Delivered,
		},
		Message: d.Message,
	}
}
