package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatReal renders a float64 the way the legacy console output did:
// plain decimal with at least one fractional digit for magnitudes in
// [1e-3, 1e7), computerized scientific notation ("1.0E7") otherwise.
// The shortest representation that round-trips is always used.
func FormatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv yields "1E+07" / "1.5E-04"; strip the sign and padding.
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return mantissa + "E" + exp
	}
	return mantissa + "E" + strconv.Itoa(n)
}

// FormatList renders items as "[a, b, c]".
func FormatList[T fmt.Stringer](items []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
