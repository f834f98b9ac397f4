package money

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		symbol string
		amount float64
		want   string
	}{
		{"whole amount", "₹", 100, "₹100.00"},
		{"rounds to two places", "₹", 99.999, "₹100.00"},
		{"keeps cents", "₹", 12.5, "₹12.50"},
		{"zero", "₹", 0, "₹0.00"},
		{"other symbol", "$", 300, "$300.00"},
		{"negative", "₹", -1.25, "₹-1.25"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Format(tt.symbol, tt.amount); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
			}
		})
	}
}

func TestBare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integral", 3, "3"},
		{"fractional", 2.5, "2.5"},
		{"zero", 0, "0"},
		{"large", 1000, "1000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Bare(tt.v); got != tt.want {
				t.Errorf("Bare(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
