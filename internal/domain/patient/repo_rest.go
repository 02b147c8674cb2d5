package patient

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/fisiodesk/fisiodesk/internal/domain/consultation"
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

// listEnvelope covers the paginator shapes the upstream has used: a flat
// Laravel page, a page with the counters nested under meta, and a plain
// patients array.
type listEnvelope struct {
	Data     []*Patient `json:"data"`
	Patients []*Patient `json:"patients"`

	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`

	Meta *struct {
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
		Total       int `json:"total"`
	} `json:"meta"`
}

func (e *listEnvelope) result() *ListResult {
	r := &ListResult{
		Items:    e.Data,
		Page:     e.CurrentPage,
		LastPage: e.LastPage,
		Total:    e.Total,
	}
	if r.Items == nil {
		r.Items = e.Patients
	}
	if e.Meta != nil {
		r.Page = e.Meta.CurrentPage
		r.LastPage = e.Meta.LastPage
		r.Total = e.Meta.Total
	}
	if r.Items == nil {
		r.Items = []*Patient{}
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.LastPage == 0 {
		r.LastPage = 1
	}
	return r
}

func (r *restRepository) List(ctx context.Context, q string, p pagination.Params) (*ListResult, error) {
	query := p.Query()
	if q != "" {
		query.Set("q", q)
	}

	var envelope listEnvelope
	if err := r.client.Get(ctx, "/patients", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.result(), nil
}

func (r *restRepository) Get(ctx context.Context, id int) (*Patient, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/patients/"+strconv.Itoa(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodePatient(raw)
}

func (r *restRepository) Create(ctx context.Context, payload *Payload) (*Patient, error) {
	var raw json.RawMessage
	if err := r.client.Post(ctx, "/patients", payload, &raw); err != nil {
		return nil, err
	}
	return decodePatient(raw)
}

func (r *restRepository) Update(ctx context.Context, id int, payload *Payload) (*Patient, error) {
	var raw json.RawMessage
	if err := r.client.Put(ctx, "/patients/"+strconv.Itoa(id), payload, &raw); err != nil {
		return nil, err
	}
	return decodePatient(raw)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, "/patients/"+strconv.Itoa(id))
}

func (r *restRepository) History(ctx context.Context, id int) (*History, error) {
	var envelope struct {
		Patient       *Patient                     `json:"patient"`
		Consultations []*consultation.Consultation `json:"consultations"`
	}
	if err := r.client.Get(ctx, "/patients/"+strconv.Itoa(id)+"/history", nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Consultations == nil {
		envelope.Consultations = []*consultation.Consultation{}
	}
	return &History{Patient: envelope.Patient, Consultations: envelope.Consultations}, nil
}
