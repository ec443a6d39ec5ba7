package service

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysSince(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		now  time.Time
		want int
	}{
		{"hari yang sama", day(2024, time.June, 1), day(2024, time.June, 1), 0},
		{"satu hari", day(2024, time.June, 1), day(2024, time.June, 2), 1},
		{"lintas bulan", day(2024, time.May, 31), day(2024, time.June, 2), 2},
		{
			"jam diabaikan",
			time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC),
			time.Date(2024, time.June, 2, 0, 15, 0, 0, time.UTC),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysSince(tt.from, tt.now); got != tt.want {
				t.Errorf("DaysSince = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	now := day(2024, time.July, 1)
	threshold := 30

	tests := []struct {
		name          string
		payments      []time.Time
		wantStatus    string
		wantDays      int
		wantNeverPaid bool
	}{
		{
			name:          "belum pernah bayar dianggap menunggak",
			payments:      nil,
			wantStatus:    OverdueStatusOverdue,
			wantDays:      -1,
			wantNeverPaid: true,
		},
		{
			name:       "baru bayar kemarin",
			payments:   []time.Time{day(2024, time.June, 30)},
			wantStatus: OverdueStatusCurrent,
			wantDays:   1,
		},
		{
			name:       "tepat di batas 30 hari masih lancar",
			payments:   []time.Time{day(2024, time.June, 1)},
			wantStatus: OverdueStatusCurrent,
			wantDays:   30,
		},
		{
			name:       "lewat satu hari dari batas",
			payments:   []time.Time{day(2024, time.May, 31)},
			wantStatus: OverdueStatusOverdue,
			wantDays:   31,
		},
		{
			name: "pembayaran terbaru yang dipakai, bukan urutan slice",
			payments: []time.Time{
				day(2024, time.January, 5),
				day(2024, time.June, 25),
				day(2024, time.March, 1),
			},
			wantStatus: OverdueStatusCurrent,
			wantDays:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.payments, now, threshold)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.DaysSinceLast != tt.wantDays {
				t.Errorf("DaysSinceLast = %d, want %d", got.DaysSinceLast, tt.wantDays)
			}
			if got.NeverPaid != tt.wantNeverPaid {
				t.Errorf("NeverPaid = %v, want %v", got.NeverPaid, tt.wantNeverPaid)
			}
			if tt.wantNeverPaid && got.LastPaymentDate != nil {
				t.Errorf("LastPaymentDate = %v, want nil", got.LastPaymentDate)
			}
			if !tt.wantNeverPaid && got.LastPaymentDate == nil {
				t.Errorf("LastPaymentDate nil, want terisi")
			}
		})
	}
}
