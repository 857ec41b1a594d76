package repo

import (
	"context"
	"net/url"
	"strconv"

	"swiftdrop/internal/api"
	"swiftdrop/internal/domain"
)

// AdminRepo is the admin app's repository: order management, partner
// assignment and dashboard stats.
type AdminRepo struct {
	public *api.Client
	authed *api.Client
}

func NewAdminRepo(public, authed *api.Client) *AdminRepo {
	return &AdminRepo{public: public, authed: authed}
}

// Login exchanges admin credentials for a session.
func (r *AdminRepo) Login(ctx context.Context, email, password string) (domain.AdminSession, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out adminSessionDTO
	if err := r.public.Post(ctx, "/admin/login/", in, &out); err != nil {
		return domain.AdminSession{}, err
	}
	return mapAdminSession(out), nil
}

// Orders lists orders, optionally filtered by status.
func (r *AdminRepo) Orders(ctx context.Context, status string) ([]domain.Order, error) {
	path := "/admin/orders/"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []orderDTO
	if err := r.authed.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, len(out))
	for i, d := range out {
		orders[i] = mapOrder(d)
	}
	return orders, nil
}

// Order fetches one order.
func (r *AdminRepo) Order(ctx context.Context, id int64) (domain.Order, error) {
	var out orderDTO
	if err := r.authed.Get(ctx, "/admin/orders/"+strconv.FormatInt(id, 10)+"/", &out); err != nil {
		return domain.Order{}, err
	}
	return mapOrder(out), nil
}

// UpdateOrderStatus posts a status change for one order.
func (r *AdminRepo) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	in := struct {
		Status string `json:"status"`
	}{status}
	return r.authed.Post(ctx, "/admin/orders/"+strconv.FormatInt(id, 10)+"/status/", in, nil)
}

// AssignPartner hands an order to a delivery partner.
func (r *AdminRepo) AssignPartner(ctx context.Context, orderID, partnerID int64) error {
	in := struct {
		DeliveryPartner int64 `json:"delivery_partner"`
	}{partnerID}
	return r.authed.Post(ctx, "/admin/orders/"+strconv.FormatInt(orderID, 10)+"/assign/", in, nil)
}

// Partners lists delivery partners.
func (r *AdminRepo) Partners(ctx context.Context) ([]domain.DeliveryPartner, error) {
	var out []partnerDTO
	if err := r.authed.Get(ctx, "/admin/delivery-partners/", &out); err != nil {
		return nil, err
	}
	partners := make([]domain.DeliveryPartner, len(out))
	for i, d := range out {
		partners[i] = mapPartner(d)
	}
	return partners, nil
}

// DashboardStats fetches the admin overview.
func (r *AdminRepo) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var out dashboardStatsDTO
	if err := r.authed.Get(ctx, "/admin/dashboard-stats/", &out); err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{
		TotalOrders:       out.TotalOrders,
		PendingOrders:     out.PendingOrders,
		ActiveDeliveries:  out.ActiveDeliveries,
		CompletedToday:    out.CompletedToday,
		RevenueToday:      out.RevenueToday,
		AvailablePartners: out.AvailablePartners,
	}, nil
}
