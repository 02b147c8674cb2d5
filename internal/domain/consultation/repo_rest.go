package consultation

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

func (r *restRepository) List(ctx context.Context, filter ListFilter) ([]*Consultation, error) {
	query := url.Values{}
	if filter.PatientID > 0 {
		query.Set("patient_id", strconv.Itoa(filter.PatientID))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Desc {
		query.Set("order", "desc")
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, "/consultations", query, &raw); err != nil {
		return nil, err
	}
	return decodeConsultationList(raw)
}

func (r *restRepository) Get(ctx context.Context, id int) (*Consultation, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/consultations/"+strconv.Itoa(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeConsultation(raw)
}

func (r *restRepository) Create(ctx context.Context, payload *CreatePayload) (*Consultation, error) {
	var raw json.RawMessage
	if err := r.client.Post(ctx, "/consultations", payload, &raw); err != nil {
		return nil, err
	}
	return decodeConsultation(raw)
}

func (r *restRepository) Update(ctx context.Context, id int, payload *UpdatePayload) (*Consultation, error) {
	var raw json.RawMessage
	if err := r.client.Put(ctx, "/consultations/"+strconv.Itoa(id), payload, &raw); err != nil {
		return nil, err
	}
	return decodeConsultation(raw)
}
