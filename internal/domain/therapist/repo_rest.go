package therapist

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
	"github.com/fisiodesk/fisiodesk/pkg/pagination"
)

type restRepository struct {
	client *upstream.Client
}

// NewRESTRepository builds a Repository backed by the upstream REST API.
func NewRESTRepository(client *upstream.Client) Repository {
	return &restRepository{client: client}
}

func (r *restRepository) List(ctx context.Context, q string, p pagination.Params) (*ListResult, error) {
	query := p.Query()
	if q != "" {
		query.Set("q", q)
	}

	var envelope listEnvelope
	if err := r.client.Get(ctx, "/therapists", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.result(), nil
}

func (r *restRepository) Get(ctx context.Context, id int) (*Therapist, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/therapists/"+strconv.Itoa(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeTherapist(raw)
}

func (r *restRepository) Create(ctx context.Context, payload *CreatePayload) (*Therapist, error) {
	var raw json.RawMessage
	if err := r.client.Post(ctx, "/therapists", payload, &raw); err != nil {
		return nil, err
	}
	return decodeTherapist(raw)
}

func (r *restRepository) Update(ctx context.Context, id int, payload *UpdatePayload) (*Therapist, error) {
	var raw json.RawMessage
	if err := r.client.Put(ctx, "/therapists/"+strconv.Itoa(id), payload, &raw); err != nil {
		return nil, err
	}
	return decodeTherapist(raw)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, "/therapists/"+strconv.Itoa(id))
}
