package payments

import "testing"

func TestAmountInCents(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{10, 1000},
		{10.5, 1050},
		{1, 100},
		{0, 0},
	}

	for _, tc := range cases {
		if got := AmountInCents(tc.price); got != tc.want {
			t.Errorf("AmountInCents(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
