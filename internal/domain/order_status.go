package domain

import "strings"

// OrderStatus is the client-side normalisation of the backend's order
// status string.
type OrderStatus string

const (
	OrderPlaced         OrderStatus = "PLACED"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderPickedUp       OrderStatus = "PICKED_UP"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

var orderStatuses = map[string]OrderStatus{
	string(OrderPlaced):         OrderPlaced,
	string(OrderConfirmed):      OrderConfirmed,
	string(OrderPreparing):      OrderPreparing,
	string(OrderReadyForPickup): OrderReadyForPickup,
	string(OrderPickedUp):       OrderPickedUp,
	string(OrderOutForDelivery): OrderOutForDelivery,
	string(OrderDelivered):      OrderDelivered,
	string(OrderCancelled):      OrderCancelled,
}

// OrderStatusFromString normalises a backend status string. Matching is
// case-insensitive; unrecognised values map to OrderPlaced so an unknown
// backend status can never crash the client.
func OrderStatusFromString(s string) OrderStatus {
	if st, ok := orderStatuses[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return st
	}
	return OrderPlaced
}
