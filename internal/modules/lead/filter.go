package lead

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"leadcrm/internal/domain"
)

// Field classes of the lead schema. Anything outside these tables is
// ignored by the builder no matter what the request sends.
var (
	textFields    = []string{"email", "company", "city"}
	enumFields    = []string{"status", "source"}
	numberFields  = []string{"score", "lead_value"}
	dateFields    = []string{"created_at", "last_activity_at"}
	booleanFields = []string{"is_qualified"}
)

// BuildFilter maps raw query parameters onto a filter expression. It is
// pure: no I/O, deterministic for a given input.
//
// Rules are applied per field in a fixed order, and a later rule
// overwrites whatever predicate an earlier rule left on the field. The
// one exception is the gt/lt (after/before) pairing, which merges the two
// partial bounds into a single two-sided range. Malformed numeric or date
// input coerces to the None predicate, which matches no record.
func BuildFilter(q url.Values) domain.Filter {
	out := domain.Filter{}

	// Strings: equals, contains
	for _, f := range textFields {
		if v := q.Get(f); v != "" {
			out[f] = domain.Equals{Value: v}
		}
		if v := q.Get(f + "_contains"); v != "" {
			out[f] = domain.Contains{Value: v}
		}
	}

	// Enums: equals, in
	for _, f := range enumFields {
		if v := q.Get(f); v != "" {
			out[f] = domain.Equals{Value: v}
		}
		if vals, ok := q[f+"_in"]; ok && len(vals) > 0 && vals[0] != "" {
			out[f] = domain.In{Values: splitList(vals)}
		}
	}

	// Numbers: equals, gt, lt, between
	for _, f := range numberFields {
		applyNumberRules(out, q, f)
	}

	// Dates: on, before, after, between
	for _, f := range dateFields {
		applyDateRules(out, q, f)
	}

	// Boolean: equals. Presence of the key is enough; only the literal
	// "true" means true.
	for _, f := range booleanFields {
		if vals, ok := q[f]; ok {
			out[f] = domain.Equals{Value: len(vals) > 0 && vals[0] == "true"}
		}
	}

	return out
}

func applyNumberRules(out domain.Filter, q url.Values, field string) {
	if v := q.Get(field); v != "" {
		if n, ok := parseNumber(v); ok {
			out[field] = domain.Equals{Value: n}
		} else {
			out[field] = domain.None{}
		}
	}

	if v := q.Get(field + "_gt"); v != "" {
		if n, ok := parseNumber(v); ok {
			out[field] = domain.GreaterThan{Value: n}
		} else {
			out[field] = domain.None{}
		}
	}

	if v := q.Get(field + "_lt"); v != "" {
		if n, ok := parseNumber(v); ok {
			if gt, merged := out[field].(domain.GreaterThan); merged {
				out[field] = domain.Range{Min: gt.Value, Max: n}
			} else {
				out[field] = domain.LessThan{Value: n}
			}
		} else {
			out[field] = domain.None{}
		}
	}

	if v := q.Get(field + "_between"); v != "" {
		min, max, ok := parsePair(v, parseNumber)
		if ok {
			out[field] = domain.Range{Min: min, Max: max, MinIncl: true, MaxIncl: true}
		} else {
			out[field] = domain.None{}
		}
	}
}

func applyDateRules(out domain.Filter, q url.Values, field string) {
	// The 24-hour window starting at the given instant, inclusive start
	// and exclusive end.
	if v := q.Get(field + "_on"); v != "" {
		if d, ok := parseDate(v); ok {
			out[field] = domain.Range{Min: d, Max: d.Add(24 * time.Hour), MinIncl: true}
		} else {
			out[field] = domain.None{}
		}
	}

	if v := q.Get(field + "_before"); v != "" {
		if d, ok := parseDate(v); ok {
			if r, merged := out[field].(domain.Range); merged {
				r.Max = d
				r.MaxIncl = false
				out[field] = r
			} else {
				out[field] = domain.LessThan{Value: d}
			}
		} else {
			out[field] = domain.None{}
		}
	}

	if v := q.Get(field + "_after"); v != "" {
		if d, ok := parseDate(v); ok {
			switch prev := out[field].(type) {
			case domain.LessThan:
				out[field] = domain.Range{Min: d, Max: prev.Value}
			case domain.Range:
				prev.Min = d
				prev.MinIncl = false
				out[field] = prev
			default:
				out[field] = domain.GreaterThan{Value: d}
			}
		} else {
			out[field] = domain.None{}
		}
	}

	if v := q.Get(field + "_between"); v != "" {
		from, to, ok := parsePair(v, parseDate)
		if ok {
			out[field] = domain.Range{Min: from, Max: to, MinIncl: true, MaxIncl: true}
		} else {
			out[field] = domain.None{}
		}
	}
}

// splitList handles both repeated parameters (?status_in=a&status_in=b)
// and a single comma-separated value.
func splitList(vals []string) []string {
	if len(vals) > 1 {
		return vals
	}
	return strings.Split(vals[0], ",")
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parsePair[T any](s string, parse func(string) (T, bool)) (T, T, bool) {
	var zero T
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return zero, zero, false
	}
	lo, ok := parse(parts[0])
	if !ok {
		return zero, zero, false
	}
	hi, ok := parse(parts[1])
	if !ok {
		return zero, zero, false
	}
	return lo, hi, true
}
