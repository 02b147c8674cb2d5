package dashboard

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

type restRepository struct {
	client *upstream.Client
}

// NewRESTRepository builds a Repository backed by the upstream REST API.
func NewRESTRepository(client *upstream.Client) Repository {
	return &restRepository{client: client}
}

func (r *restRepository) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := r.client.Get(ctx, "/dashboard/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *restRepository) Charts(ctx context.Context, year int) (*Charts, error) {
	var query url.Values
	if year > 0 {
		query = url.Values{}
		query.Set("year", strconv.Itoa(year))
	}

	var c Charts
	if err := r.client.Get(ctx, "/dashboard/charts", query, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
