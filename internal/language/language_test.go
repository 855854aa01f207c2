package language_test

import (
	"testing"

	"smartsubs/internal/language"
)

func TestToISO2(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"zh-Hans", "zh"},
		{"zh-Hant", "zh"},
		{"en-US", "en"},
		{"EN", "en"},
		{"ja", "ja"},
		{"  ko  ", "ko"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := language.ToISO2(tc.input); got != tc.want {
			t.Fatalf("ToISO2(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestToISO2PassesThroughUnparseableValues(t *testing.T) {
	if got := language.ToISO2("not a language!"); got != "not a language!" {
		t.Fatalf("ToISO2 mangled an unparseable value: %q", got)
	}
}
