package shared_test

import (
	"nyumba/shared"
	"strings"
	"testing"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "maybe",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking", "get", "abc")

	if key != "booking:get:abc" {
		t.Errorf("expected 'booking:get:abc', got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	type query struct {
		Page  int
		Limit int
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", query{Page: 1, Limit: 10})
	second := shared.BuildCacheKeyWithQuery("booking:gets", query{Page: 1, Limit: 10})
	third := shared.BuildCacheKeyWithQuery("booking:gets", query{Page: 2, Limit: 10})

	if first != second {
		t.Errorf("expected identical keys for identical queries, got %s and %s", first, second)
	}

	if first == third {
		t.Errorf("expected distinct keys for distinct queries, got %s twice", first)
	}

	if !strings.HasPrefix(first, "booking:gets:") {
		t.Errorf("expected key to keep the prefix, got %s", first)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
