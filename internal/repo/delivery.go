package repo

import (
	"context"
	"strconv"

	"swiftdrop/internal/api"
	"swiftdrop/internal/domain"
)

// DeliveryRepo is the courier app's repository: assignments, status
// updates, location reporting, dashboard and earnings.
type DeliveryRepo struct {
	client *api.Client
}

func NewDeliveryRepo(client *api.Client) *DeliveryRepo {
	return &DeliveryRepo{client: client}
}

// Assignments fetches one page of the partner's assignments.
func (r *DeliveryRepo) Assignments(ctx context.Context, page int) (Page[domain.DeliveryAssignment], error) {
	path := "/delivery/assignments/"
	if page > 1 {
		path += "?page=" + strconv.Itoa(page)
	}
	var out pageDTO[assignmentDTO]
	if err := r.client.Get(ctx, path, &out); err != nil {
		return Page[domain.DeliveryAssignment]{}, err
	}
	results := make([]domain.DeliveryAssignment, len(out.Results))
	for i, d := range out.Results {
		results[i] = mapAssignment(d)
	}
	return Page[domain.DeliveryAssignment]{
		Count: out.Count, Next: out.Next, Previous: out.Previous, Results: results,
	}, nil
}

// UpdateStatus posts a status change for one assignment.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, assignmentID int64, status string) error {
	in := struct {
		Status string `json:"status"`
	}{status}
	path := "/delivery/assignments/" + strconv.FormatInt(assignmentID, 10) + "/status/"
	return r.client.Post(ctx, path, in, nil)
}

// ReportLocation posts the partner's current GPS fix for an order.
func (r *DeliveryRepo) ReportLocation(ctx context.Context, orderID int64, loc domain.LatLng) error {
	in := struct {
		Order     int64   `json:"order"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}{orderID, loc.Latitude, loc.Longitude}
	return r.client.Post(ctx, "/delivery/location/", in, nil)
}

// Dashboard fetches the partner's day summary.
func (r *DeliveryRepo) Dashboard(ctx context.Context) (domain.CourierDashboard, error) {
	var out courierDashboardDTO
	if err := r.client.Get(ctx, "/delivery/dashboard/", &out); err != nil {
		return domain.CourierDashboard{}, err
	}
	return domain.CourierDashboard{
		ActiveAssignments:   out.ActiveAssignments,
		CompletedToday:      out.CompletedToday,
		EarningsToday:       out.EarningsToday,
		AverageDeliveryMins: out.AverageDeliveryMins,
	}, nil
}

// Earnings fetches the partner's earnings breakdown.
func (r *DeliveryRepo) Earnings(ctx context.Context) (domain.Earnings, error) {
	var out earningsDTO
	if err := r.client.Get(ctx, "/delivery/earnings/", &out); err != nil {
		return domain.Earnings{}, err
	}
	return domain.Earnings{
		Today: out.Today, ThisWeek: out.ThisWeek, ThisMonth: out.ThisMonth, Total: out.Total,
	}, nil
}
