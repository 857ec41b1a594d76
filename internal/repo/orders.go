package repo

import (
	"context"
	"strconv"

	"swiftdrop/internal/api"
	"swiftdrop/internal/domain"
)

// OrderRepo places and reads customer orders, and serves as the
// DeliveryTracker the tracking coordinator polls.
type OrderRepo struct {
	client *api.Client
}

func NewOrderRepo(client *api.Client) *OrderRepo {
	return &OrderRepo{client: client}
}

// PlaceOrder submits the cart contents as a new order.
func (r *OrderRepo) PlaceOrder(ctx context.Context, items []domain.OrderItem, storeID int64, address string) (domain.Order, error) {
	type itemIn struct {
		Product  int64 `json:"product"`
		Quantity int   `json:"quantity"`
	}
	in := struct {
		Store           int64    `json:"store"`
		DeliveryAddress string   `json:"delivery_address"`
		Items           []itemIn `json:"items"`
	}{Store: storeID, DeliveryAddress: address}
	for _, it := range items {
		in.Items = append(in.Items, itemIn{Product: it.ProductID, Quantity: it.Quantity})
	}

	var out orderDTO
	if err := r.client.Post(ctx, "/orders/", in, &out); err != nil {
		return domain.Order{}, err
	}
	return mapOrder(out), nil
}

// Orders lists the caller's orders, newest first.
func (r *OrderRepo) Orders(ctx context.Context) ([]domain.Order, error) {
	var out []orderDTO
	if err := r.client.Get(ctx, "/orders/", &out); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, len(out))
	for i, d := range out {
		orders[i] = mapOrder(d)
	}
	return orders, nil
}

// Order fetches one order by id.
func (r *OrderRepo) Order(ctx context.Context, id int64) (domain.Order, error) {
	var out orderDTO
	if err := r.client.Get(ctx, "/orders/"+strconv.FormatInt(id, 10)+"/", &out); err != nil {
		return domain.Order{}, err
	}
	return mapOrder(out), nil
}

// TrackDelivery fetches the latest tracking sample for an order.
func (r *OrderRepo) TrackDelivery(ctx context.Context, orderID int64) (domain.DeliveryLocation, error) {
	var out deliveryLocationDTO
	path := "/orders/" + strconv.FormatInt(orderID, 10) + "/track/"
	if err := r.client.Get(ctx, path, &out); err != nil {
		return domain.DeliveryLocation{}, err
	}
	return mapDeliveryLocation(out), nil
}

var (
	_ domain.OrderRepository = (*OrderRepo)(nil)
	_ domain.DeliveryTracker = (*OrderRepo)(nil)
)
