package tutor

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name    string
		user    float64
		correct float64
		want    bool
	}{
		{"exact match", 42, 42, true},
		{"within tolerance above", 42.005, 42, true},
		{"within tolerance below", 41.995, 42, true},
		{"outside tolerance", 42.02, 42, false},
		// 42.01-42 and 42-41.99 both compute a hair under 0.01 in
		// float64, so they land inside the tolerance.
		{"boundary above computes within", 42.01, 42, true},
		{"boundary below computes within", 41.99, 42, true},
		// 0.01-0 is exactly the tolerance value; strict < rejects it.
		{"exactly at tolerance is wrong", 0.01, 0, false},
		{"just under tolerance", 42.0099, 42, true},
		{"negative answers", -3.5, -3.5, true},
		{"sign flip", 5, -5, false},
		{"zero", 0, 0, true},
		{"decimal answer", 3.6, 3.6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.user, tt.correct); got != tt.want {
				t.Errorf("CheckAnswer(%v, %v) = %v, want %v", tt.user, tt.correct, got, tt.want)
			}
		})
	}
}
