package recurring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nlithgow/vatu/internal/recurring"
)

func TestTemplate_DaysUntilNext(t *testing.T) {
	today := date(2025, 6, 15)

	tests := []struct {
		name string
		next time.Time
		want int
	}{
		{"DueToday", date(2025, 6, 15), 0},
		{"DueTomorrow", date(2025, 6, 16), 1},
		{"DueNextWeek", date(2025, 6, 22), 7},
		{"OverdueYesterday", date(2025, 6, 14), -1},
		{"LongOverdue", date(2025, 5, 1), -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := &recurring.Template{NextOccurrence: tt.next}

			assert.Equal(t, tt.want, tpl.DaysUntilNext(today))
		})
	}
}

func TestTemplate_IsOverdue(t *testing.T) {
	today := date(2025, 6, 15)

	tests := []struct {
		name   string
		next   time.Time
		status recurring.Status
		want   bool
	}{
		{"ActivePastDue", date(2025, 6, 1), recurring.StatusActive, true},
		{"ActiveDueToday", date(2025, 6, 15), recurring.StatusActive, false},
		{"ActiveDueLater", date(2025, 7, 1), recurring.StatusActive, false},
		{"PausedPastDue", date(2025, 6, 1), recurring.StatusPaused, false},
		{"CompletedPastDue", date(2025, 6, 1), recurring.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := &recurring.Template{NextOccurrence: tt.next, Status: tt.status}

			assert.Equal(t, tt.want, tpl.IsOverdue(today))
		})
	}
}
