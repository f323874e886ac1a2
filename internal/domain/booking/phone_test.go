package booking

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0501234567", "501234567"},
		{"050-123 4567", "501234567"},
		{"+972 50 123 4567", "972501234567"},
		{"501234567", "501234567"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizePhone(tc.raw); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCustomerIDGroupsFormattingVariants(t *testing.T) {
	a := CustomerID("0501234567")
	b := CustomerID("050-123-4567")

	if a != b {
		t.Errorf("CustomerID variants differ: %q vs %q", a, b)
	}
	if a != "CID-501234567" {
		t.Errorf("CustomerID = %q, want %q", a, "CID-501234567")
	}
}
