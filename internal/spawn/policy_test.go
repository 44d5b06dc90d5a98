package spawn

import (
	"testing"
	"time"
)

func TestConstantInterval(t *testing.T) {
	window := 8 * time.Second

	if got := ConstantInterval(window, 4, 4); got != 2*time.Second {
		t.Errorf("ConstantInterval(8s, 4, 4) = %v, want 2s", got)
	}
	// Constant policy ignores the pending count.
	if got := ConstantInterval(window, 4, 1); got != 2*time.Second {
		t.Errorf("ConstantInterval(8s, 4, 1) = %v, want 2s", got)
	}
	if got := ConstantInterval(window, 0, 0); got != 0 {
		t.Errorf("ConstantInterval(8s, 0, 0) = %v, want 0", got)
	}
}

func TestRemainingInterval(t *testing.T) {
	window := 8 * time.Second

	if got := RemainingInterval(window, 4, 4); got != 2*time.Second {
		t.Errorf("RemainingInterval(8s, 4, 4) = %v, want 2s", got)
	}
	// Remaining policy stretches the interval as the pool drains.
	if got := RemainingInterval(window, 4, 1); got != 8*time.Second {
		t.Errorf("RemainingInterval(8s, 4, 1) = %v, want 8s", got)
	}
	if got := RemainingInterval(window, 4, 0); got != 0 {
		t.Errorf("RemainingInterval(8s, 4, 0) = %v, want 0", got)
	}
}

func TestParseWrapPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    WrapPolicy
		wantErr bool
	}{
		{"", WrapRepeatLast, false},
		{"repeat_last", WrapRepeatLast, false},
		{"loop_from_start", WrapLoopFromStart, false},
		{"stop", WrapStop, false},
		{"bogus", WrapRepeatLast, true},
	}

	for _, tt := range tests {
		got, err := ParseWrapPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWrapPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseWrapPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseIntervalPolicy(t *testing.T) {
	for _, in := range []string{"", "constant", "remaining"} {
		if _, err := ParseIntervalPolicy(in); err != nil {
			t.Errorf("ParseIntervalPolicy(%q) error = %v, want nil", in, err)
		}
	}
	if _, err := ParseIntervalPolicy("bogus"); err == nil {
		t.Error("ParseIntervalPolicy(bogus): want error, got nil")
	}
}

func TestWrapPolicy_String(t *testing.T) {
	if WrapRepeatLast.String() != "repeat_last" {
		t.Errorf("WrapRepeatLast.String() = %q", WrapRepeatLast.String())
	}
	if WrapLoopFromStart.String() != "loop_from_start" {
		t.Errorf("WrapLoopFromStart.String() = %q", WrapLoopFromStart.String())
	}
	if WrapStop.String() != "stop" {
		t.Errorf("WrapStop.String() = %q", WrapStop.String())
	}
}
