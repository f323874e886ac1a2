package booking

import "testing"

func TestSanitizeComments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text untouched",
			raw:  "نظارة قراءة جديدة",
			want: "نظارة قراءة جديدة",
		},
		{
			name: "script dropped with its content",
			raw:  "<script>alert(1)</script>مرحبا",
			want: "مرحبا",
		},
		{
			name: "markup stripped text kept",
			raw:  "<b>urgent</b> please",
			want: "urgent please",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  hello  ",
			want: "hello",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeComments(tc.raw); got != tc.want {
				t.Errorf("SanitizeComments(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
