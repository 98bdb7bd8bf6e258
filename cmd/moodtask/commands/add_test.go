package commands

import (
	"strings"
	"testing"
	"time"
)

func TestValidateDeadline(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"future date-time", "2026-09-01 17:00", ""},
		{"future date only", "2026-12-31", ""},
		{"past", "2020-01-01 09:00", "in the past"},
		{"unparseable", "whenever", "cannot parse"},
		{"empty", "", "cannot parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeadline(tt.input, now)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateDeadline(%q) error: %v", tt.input, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validateDeadline(%q) = %v, want error containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDeadlineChoices(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.Local)

	tests := []struct {
		index int
		want  string
	}{
		{0, "2026-08-23 17:00"},
		{1, "2026-08-24 09:00"},
		{2, "2026-08-30 09:00"},
	}

	for _, tt := range tests {
		choice := deadlineChoices[tt.index]
		if got := choice.value(now); got != tt.want {
			t.Errorf("%s = %q, want %q", choice.label, got, tt.want)
		}
	}

	custom := deadlineChoices[len(deadlineChoices)-1]
	if custom.value != nil {
		t.Error("custom choice should have no generated value")
	}
}

func TestAddFormStepsThroughFields(t *testing.T) {
	m := newAddModel(nil, "Write report")

	if m.step != stepTitle {
		t.Fatalf("initial step = %v, want stepTitle", m.step)
	}
	if m.titleInput.Value() != "Write report" {
		t.Errorf("prefilled title = %q", m.titleInput.Value())
	}
	if m.priorityCursor != 1 {
		t.Errorf("default priority cursor = %d, want 1 (Medium)", m.priorityCursor)
	}
}
