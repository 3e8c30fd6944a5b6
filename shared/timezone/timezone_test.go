package timezone_test

import (
	"nyumba/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.IsZero() {
		t.Error("Today() returned zero time")
	}

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("Today() is not midnight: %v", today)
	}

	// Today() compares against dates parsed with time.Parse, which yields
	// UTC midnight, so both sides must share the UTC location.
	if today.Location() != time.UTC {
		t.Errorf("Today() is not in UTC: %v", today.Location())
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}
}
