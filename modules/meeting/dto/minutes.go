package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Minutes is a duration in whole minutes. It decodes from a JSON number or
// from a string holding one, so "30" and 30 are the same.
type Minutes int

func (m Minutes) Int() int {
	return int(m)
}

func (m *Minutes) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("duration: %w", err)
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("duration: %q is not a number", raw)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("duration: %q is not a whole number of minutes", raw)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("duration: %q is out of range", raw)
	}

	*m = Minutes(f)
	return nil
}
