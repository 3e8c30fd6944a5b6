package validator_test

import (
	"nyumba/shared/validator"
	"strings"
	"testing"
)

type bookingRequest struct {
	FullName string `validate:"required,max=150"     json:"full_name"`
	Email    string `validate:"required,email"       json:"email"`
	CheckIn  string `validate:"required,dateformat"  json:"check_in"`
	CheckOut string `validate:"required,dateformat"  json:"check_out"`
	Guests   int    `validate:"required,gte=1"       json:"guests"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: &bookingRequest{
				FullName: "Jane Guest",
				Email:    "jane@example.com",
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-04",
				Guests:   2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &bookingRequest{
				Email:    "jane@example.com",
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-04",
				Guests:   2,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &bookingRequest{
				FullName: "Jane Guest",
				Email:    "not-an-email",
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-04",
				Guests:   2,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &bookingRequest{
				FullName: "Jane Guest",
				Email:    "jane@example.com",
				CheckIn:  "01/07/2024",
				CheckOut: "2024-07-04",
				Guests:   2,
			},
			expectError: true,
		},
		{
			name: "zero guests",
			data: &bookingRequest{
				FullName: "Jane Guest",
				Email:    "jane@example.com",
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-04",
				Guests:   0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := strings.NewReader(`{"full_name":"Jane Guest","email":"jane@example.com","check_in":"2024-07-01","check_out":"2024-07-04","guests":2}`)

	req := bookingRequest{}
	if err := validator.Validate(body, &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.FullName != "Jane Guest" {
		t.Errorf("expected full_name to be decoded, got %q", req.FullName)
	}
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"full_name":`)

	req := bookingRequest{}
	if err := validator.Validate(body, &req); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2024-07-01", "dateformat"); err != nil {
		t.Errorf("expected valid date to pass, got %v", err)
	}

	if err := validator.ValidateVar("July 1st", "dateformat"); err == nil {
		t.Error("expected invalid date to fail")
	}
}
