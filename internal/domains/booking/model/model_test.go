package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"nyumba/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{model.StatusPending, model.StatusConfirmed, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPending, model.StatusCheckedIn, false},
		{model.StatusConfirmed, model.StatusCheckedIn, true},
		{model.StatusConfirmed, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusCheckedOut, false},
		{model.StatusCheckedIn, model.StatusCheckedOut, true},
		{model.StatusCheckedIn, model.StatusCancelled, true},
		{model.StatusCheckedIn, model.StatusConfirmed, false},
		{model.StatusCheckedOut, model.StatusCancelled, false},
		{model.StatusCheckedOut, model.StatusCheckedIn, false},
		{model.StatusCancelled, model.StatusConfirmed, false},
		{model.StatusCancelled, model.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestBlocksRoom(t *testing.T) {
	assert.False(t, model.BlocksRoom(model.StatusPending))
	assert.True(t, model.BlocksRoom(model.StatusConfirmed))
	assert.True(t, model.BlocksRoom(model.StatusCheckedIn))
	assert.False(t, model.BlocksRoom(model.StatusCheckedOut))
	assert.False(t, model.BlocksRoom(model.StatusCancelled))
}

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut time.Time
		want                 bool
	}{
		{"disjoint before", day(1), day(3), day(5), day(7), false},
		{"disjoint after", day(5), day(7), day(1), day(3), false},
		{"same-day turnover", day(1), day(3), day(3), day(5), false},
		{"same-day turnover reversed", day(3), day(5), day(1), day(3), false},
		{"partial overlap", day(1), day(4), day(3), day(6), true},
		{"contained", day(2), day(3), day(1), day(5), true},
		{"identical", day(1), day(3), day(1), day(3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut))
		})
	}
}

func TestNightsAndTotalPrice(t *testing.T) {
	booking := model.Booking{
		CheckIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 3, booking.Nights())

	total := booking.TotalPrice(decimal.RequireFromString("100"))
	assert.True(t, total.Equal(decimal.RequireFromString("300")))
}
