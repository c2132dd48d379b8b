package dto

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PageRequest identifies one page of a filtered resource listing. Page is
// 1-based and maps to the skip/limit params of the listing endpoints.
type PageRequest struct {
	Page     int               `json:"page" validate:"gte=1"`
	PageSize int               `json:"pageSize" validate:"gt=0"`
	Filters  map[string]string `json:"filters,omitempty"`
}

func (r PageRequest) Validate() error {
	return validate.Struct(r)
}

func (r PageRequest) Skip() int {
	return (r.Page - 1) * r.PageSize
}

func (r PageRequest) Query() url.Values {
	query := url.Values{}

	query.Set("skip", strconv.Itoa(r.Skip()))
	query.Set("limit", strconv.Itoa(r.PageSize))

	for name, value := range r.Filters {
		query.Set(name, value)
	}

	return query
}

// CanonicalFilters renders the filter map as a sorted name=value list so
// that equal filter sets always produce the same string.
func (r PageRequest) CanonicalFilters() string {
	names := make([]string, 0, len(r.Filters))

	for name := range r.Filters {
		names = append(names, name)
	}

	sort.Strings(names)

	pairs := make([]string, 0, len(names))

	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%v=%v", name, r.Filters[name]))
	}

	return strings.Join(pairs, "&")
}

// Page is the listing envelope. Count is the total number of records that
// match the filters, not the size of Data.
type Page[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

func (p Page[T]) TotalPages(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	return (p.Count + pageSize - 1) / pageSize
}

func DecodePage[T any](raw []byte) (Page[T], error) {
	page := Page[T]{}

	if err := json.Unmarshal(raw, &page); err != nil {
		return page, fmt.Errorf("failed to unmarshal page envelope - %w", err)
	}

	if page.Data == nil {
		page.Data = make([]T, 0)
	}

	return page, nil
}
