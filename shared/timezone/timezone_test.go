package timezone_test

import (
	"testing"
	"time"

	"campusbook/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneFormatAndParse(t *testing.T) {
	testTime := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, "2006-01-02 15:04")
	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-03-02")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}
}
