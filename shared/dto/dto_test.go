package dto_test

import (
	"net/http"
	"net/url"
	"nyumba/shared/constant"
	"nyumba/shared/dto"
	"nyumba/shared/model"
	"nyumba/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateTimeFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateTimeFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "number",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "number",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "without default request and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page and limit values",
			queryParams: map[string]string{
				"page":  "abc",
				"limit": "-5",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: dto.SortDirDesc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{
				URL: &url.URL{RawQuery: values.Encode()},
			}

			params := &dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if *params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *params)
			}
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected int
	}{
		{
			name:     "first page",
			params:   dto.QueryParams{Page: 1, Limit: 10},
			expected: 0,
		},
		{
			name:     "third page",
			params:   dto.QueryParams{Page: 3, Limit: 10},
			expected: 20,
		},
		{
			name:     "zero page",
			params:   dto.QueryParams{Page: 0, Limit: 10},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Offset(); got != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, got)
			}
		})
	}
}
