package repo

import (
	"context"
	"strconv"

	"swiftdrop/internal/api"
	"swiftdrop/internal/domain"
)

// CatalogRepo lists stores and products for the customer app.
type CatalogRepo struct {
	client *api.Client
}

func NewCatalogRepo(client *api.Client) *CatalogRepo {
	return &CatalogRepo{client: client}
}

// Stores lists the marketplace storefronts.
func (r *CatalogRepo) Stores(ctx context.Context) ([]domain.Store, error) {
	var out []storeDTO
	if err := r.client.Get(ctx, "/stores/", &out); err != nil {
		return nil, err
	}
	stores := make([]domain.Store, len(out))
	for i, d := range out {
		stores[i] = mapStore(d)
	}
	return stores, nil
}

// Products lists one store's products.
func (r *CatalogRepo) Products(ctx context.Context, storeID int64) ([]domain.Product, error) {
	var out []productDTO
	path := "/stores/" + strconv.FormatInt(storeID, 10) + "/products/"
	if err := r.client.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(out))
	for i, d := range out {
		products[i] = mapProduct(d)
	}
	return products, nil
}

var _ domain.CatalogRepository = (*CatalogRepo)(nil)
