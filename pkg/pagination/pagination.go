package pagination

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Params holds page-number pagination parameters extracted from a request.
// The upstream backend paginates by page number, so the gateway does too.
type Params struct {
	Page    int
	PerPage int
}

// FromContext extracts pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

// Query renders the parameters as upstream query values.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("per_page", strconv.Itoa(p.PerPage))
	return q
}

// HasNext reports whether there are more pages after the current one.
func (p Params) HasNext(lastPage int) bool {
	return p.Page < lastPage
}

// HasPrevious reports whether there are pages before the current one.
func (p Params) HasPrevious() bool {
	return p.Page > 1
}

// NextPage returns the next page number.
func (p Params) NextPage() int {
	return p.Page + 1
}

// PreviousPage returns the previous page number, never below 1.
func (p Params) PreviousPage() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// Response wraps a paginated API response.
type Response struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	LastPage int         `json:"last_page"`
	Total    int         `json:"total"`
	HasMore  bool        `json:"has_more"`
}

func NewResponse(data interface{}, page, lastPage, total int) *Response {
	return &Response{
		Data:     data,
		Page:     page,
		LastPage: lastPage,
		Total:    total,
		HasMore:  page < lastPage,
	}
}
