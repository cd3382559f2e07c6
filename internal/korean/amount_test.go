package korean

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"5천만원", 50_000_000, true},
		{"1.5억", 150_000_000, true},
		{"1억5천만", 150_000_000, true},
		{"2조", 2_000_000_000_000, true},
		{"300만원", 3_000_000, true},
		{"1천", 1_000, true},
		{"50,000,000", 50_000_000, true},
		{"50000000원", 50_000_000, true},
		{"1억 2천만 원", 120_000_000, true},
		{"3백만", 3_000_000, true},
		{"", 0, false},
		{"예산 없음", 0, false},
		{"0원", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseAmount(tc.input)
		if ok != tc.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestFormatAmountShort(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{500_000_000, "5억"},
		{150_000_000, "1.5억"},
		{50_000_000, "5천만원"},
		{5_000_000, "500만원"},
		{30_000, "3만원"},
		{9_000, "₩9,000"},
	}

	for _, tc := range cases {
		if got := FormatAmountShort(tc.input); got != tc.want {
			t.Errorf("FormatAmountShort(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatAmountShortRoundTrips(t *testing.T) {
	for _, amount := range []int64{500_000_000, 50_000_000, 5_000_000, 30_000} {
		short := FormatAmountShort(amount)
		parsed, ok := ParseAmount(short)
		if !ok || parsed != amount {
			t.Errorf("round trip of %d via %q gave %d (ok=%v)", amount, short, parsed, ok)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{0, "₩0"},
		{999, "₩999"},
		{50_000_000, "₩50,000,000"},
		{-1_234_567, "-₩1,234,567"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.input); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
