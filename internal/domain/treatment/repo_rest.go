package treatment

import (
	"context"
	"encoding/json"
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

func (r *restRepository) ListByConsultation(ctx context.Context, consultationID int) ([]*Session, error) {
	query := url.Values{}
	query.Set("consultation_id", strconv.Itoa(consultationID))

	var raw json.RawMessage
	if err := r.client.Get(ctx, "/treatment-sessions", query, &raw); err != nil {
		return nil, err
	}
	return decodeSessionList(raw)
}

func (r *restRepository) Get(ctx context.Context, id int) (*Session, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/treatment-sessions/"+strconv.Itoa(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeSession(raw)
}

func (r *restRepository) Create(ctx context.Context, payload *CreatePayload) (*Session, error) {
	var raw json.RawMessage
	if err := r.client.Post(ctx, "/treatment-sessions", payload, &raw); err != nil {
		return nil, err
	}
	return decodeSession(raw)
}

func (r *restRepository) Update(ctx context.Context, id int, payload *UpdatePayload) (*Session, error) {
	var raw json.RawMessage
	if err := r.client.Put(ctx, "/treatment-sessions/"+strconv.Itoa(id), payload, &raw); err != nil {
		return nil, err
	}
	return decodeSession(raw)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, "/treatment-sessions/"+strconv.Itoa(id))
}
