package decision

import (
	"errors"
	"testing"
	"time"
)

func TestNewWindows(t *testing.T) {
	tests := []struct {
		name      string
		tolerance int
		delay     int
		wantErr   error
	}{
		{name: "defaults", tolerance: 2, delay: 15},
		{name: "delay equal to tolerance is allowed", tolerance: 5, delay: 5},
		{name: "delay shorter than tolerance is rejected", tolerance: 10, delay: 5, wantErr: ErrWindowOrdering},
		{name: "zero tolerance is rejected", tolerance: 0, delay: 15, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWindows(tt.tolerance, tt.delay)
			switch {
			case tt.tolerance <= 0:
				if err == nil {
					t.Fatal("expected error for non-positive tolerance")
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got err %v, want %v", err, tt.wantErr)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if w.Tolerance != time.Duration(tt.tolerance)*time.Minute {
					t.Errorf("tolerance: got %v", w.Tolerance)
				}
				if w.Delay != time.Duration(tt.delay)*time.Minute {
					t.Errorf("delay: got %v", w.Delay)
				}
			}
		})
	}
}
