package token

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDecodeInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		err  error
	}{
		{in: "0", want: 0},
		{in: "+0", want: 0},
		{in: "-0", want: 0},
		{in: "42", want: 42},
		{in: "+99", want: 99},
		{in: "-17", want: -17},
		{in: "1_000", want: 1000},
		{in: "5_349_221", want: 5349221},
		{in: "0xDEADBEEF", want: 0xdeadbeef},
		{in: "0xdead_beef", want: 0xdeadbeef},
		{in: "-0x10", want: -16},
		{in: "0o755", want: 0o755},
		{in: "+0o10", want: 8},
		{in: "0b11010110", want: 214},
		{in: "9223372036854775807", want: math.MaxInt64},
		{in: "-9223372036854775808", want: math.MinInt64},
		{in: "012", err: ErrNumberLeadingZero},
		{in: "0_1", err: ErrNumberLeadingZero},
		{in: "_1", err: ErrNumberUnderscore},
		{in: "1_", err: ErrNumberUnderscore},
		{in: "1__2", err: ErrNumberUnderscore},
		{in: "0x_1", err: ErrNumberUnderscore},
		{in: "0xZ", err: ErrNumber},
		{in: "9223372036854775808", err: ErrNumber},
		{in: "", err: ErrNumber},
		{in: strings.Repeat("1", 1000), err: ErrNumberTooLong},
	}
	for _, tt := range tests {
		got, err := DecodeInteger(tt.in)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("DecodeInteger(`%s`) gave %v want %v", tt.in, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeInteger(`%s`) gave %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeInteger(`%s`) = %d want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecodeFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		err  error
	}{
		{in: "3.1415", want: 3.1415},
		{in: "+1.0", want: 1},
		{in: "-0.01", want: -0.01},
		{in: "5e+22", want: 5e22},
		{in: "1e06", want: 1e6},
		{in: "-2E-2", want: -0.02},
		{in: "6.626e-34", want: 6.626e-34},
		{in: "9_224.617", want: 9224.617},
		{in: "5.", want: 5},
		{in: "012.5", err: ErrNumberLeadingZero},
		{in: "1._5", err: ErrNumberUnderscore},
		{in: "6.5__2", err: ErrNumberUnderscore},
		{in: "0x1.8p3", err: ErrNumber},
		{in: "", err: ErrNumber},
	}
	for _, tt := range tests {
		got, err := DecodeFloat(tt.in)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("DecodeFloat(`%s`) gave %v want %v", tt.in, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeFloat(`%s`) gave %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeFloat(`%s`) = %g want %g", tt.in, got, tt.want)
		}
	}
}

func TestDecodeFloatNonFinite(t *testing.T) {
	for _, in := range []string{"inf", "+inf"} {
		if got, err := DecodeFloat(in); err != nil || !math.IsInf(got, 1) {
			t.Errorf("DecodeFloat(`%s`) = %g, %v want +Inf", in, got, err)
		}
	}
	if got, err := DecodeFloat("-inf"); err != nil || !math.IsInf(got, -1) {
		t.Errorf("DecodeFloat(`-inf`) = %g, %v want -Inf", got, err)
	}
	for _, in := range []string{"nan", "+nan", "-nan"} {
		if got, err := DecodeFloat(in); err != nil || !math.IsNaN(got) {
			t.Errorf("DecodeFloat(`%s`) = %g, %v want NaN", in, got, err)
		}
	}
}

// Every number failure is an ErrNumber, whatever the detail.
func TestNumberErrFamily(t *testing.T) {
	for _, sub := range []error{ErrNumberLeadingZero, ErrNumberUnderscore, ErrNumberTooLong} {
		if !errors.Is(sub, ErrNumber) {
			t.Errorf("%v does not wrap ErrNumber", sub)
		}
	}
}
