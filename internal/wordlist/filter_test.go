package wordlist

import "testing"

func TestSanitizeLine(t *testing.T) {
	cases := map[string]string{
		"plain":      "plain",
		"\tindent":   "    indent",
		"ab\tc":      "ab  c",
		"bell\a!\r":  "bell!",
		"naïve\x1b[": "naïve[",
		"日\tx":       "日  x",
	}
	for in, want := range cases {
		if got := SanitizeLine(in); got != want {
			t.Fatalf("SanitizeLine(%q) = %q, want %q", in, got, want)
		}
	}
}
