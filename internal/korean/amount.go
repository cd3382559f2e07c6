// Package korean holds the Korean-language money and date helpers shared by
// the chat tools, the HTTP layer and the exports.
package korean

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Magnitude suffixes in descending order. Each pattern is matched and
// consumed independently, so "1억5천만" sums both terms.
var magnitudes = []struct {
	re   *regexp.Regexp
	unit float64
}{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)조`), 1_000_000_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)억`), 100_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)천만`), 10_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)백만`), 1_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)만`), 10_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)천`), 1_000},
}

var digitRun = regexp.MustCompile(`\d+`)

// ParseAmount converts expressions like "5천만원", "1.5억" or "1억5천만"
// into won. Matched magnitude terms are summed and any leftover digit run is
// added as ones. Returns ok=false when the text carries no positive numeric
// content; malformed input never errors.
func ParseAmount(text string) (int64, bool) {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, text)

	var total float64
	remaining := normalized
	for _, m := range magnitudes {
		loc := m.re.FindStringSubmatchIndex(remaining)
		if loc == nil {
			continue
		}
		coeff, err := strconv.ParseFloat(remaining[loc[2]:loc[3]], 64)
		if err == nil {
			total += coeff * m.unit
		}
		remaining = remaining[:loc[0]] + remaining[loc[1]:]
	}

	if digits := digitRun.FindString(remaining); digits != "" {
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
			total += float64(n)
		}
	}

	if total <= 0 {
		return 0, false
	}
	return int64(math.Round(total)), true
}

// FormatAmountShort renders an amount in the canonical short form: "5억",
// "5천만원", "500만원". Fractional 억 and 천만 keep one decimal.
// ParseAmount round-trips these for whole-unit values.
func FormatAmountShort(amount int64) string {
	n := float64(amount)
	switch {
	case n >= 100_000_000:
		uk := n / 100_000_000
		if uk == math.Trunc(uk) {
			return strconv.FormatFloat(uk, 'f', -1, 64) + "억"
		}
		return fmt.Sprintf("%.1f억", uk)
	case n >= 10_000_000:
		chunman := n / 10_000_000
		if chunman == math.Trunc(chunman) {
			return strconv.FormatFloat(chunman, 'f', -1, 64) + "천만원"
		}
		return fmt.Sprintf("%.1f천만원", chunman)
	case n >= 10_000:
		man := n / 10_000
		if man == math.Trunc(man) {
			return strconv.FormatFloat(man, 'f', -1, 64) + "만원"
		}
		return fmt.Sprintf("%.0f만원", man)
	}
	return FormatAmount(amount)
}

// FormatAmount renders the full figure with thousands grouping: "₩50,000,000".
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + "₩" + b.String()
}
