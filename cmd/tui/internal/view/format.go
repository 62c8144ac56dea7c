package view

import (
	"strconv"
	"time"
)

// FormatAmount renders a currency amount with es-AR thousands
// separators, e.g. "$ 45.000".
func FormatAmount(amount int64) string {
	s := strconv.FormatInt(amount, 10)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte

	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}

		out = append(out, c)
	}

	if neg {
		return "$ -" + string(out)
	}

	return "$ " + string(out)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
