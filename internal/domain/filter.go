package domain

// Filter is a structured list-query expression: one predicate per lead
// field, conjunctive across fields. It is built once from request query
// parameters and executed by the repository, which knows nothing about
// its construction.
type Filter map[string]Predicate

// Predicate is a single constraint on one field. The set of variants is
// closed; values are string, float64, bool or time.Time depending on the
// field class.
type Predicate interface {
	predicate()
}

// Equals matches the exact value.
type Equals struct {
	Value any
}

// Contains matches a case-insensitive substring.
type Contains struct {
	Value string
}

// In matches any of the listed values.
type In struct {
	Values []string
}

// GreaterThan is an exclusive lower bound.
type GreaterThan struct {
	Value any
}

// LessThan is an exclusive upper bound.
type LessThan struct {
	Value any
}

// Range is a two-sided bound. Inclusivity is tracked per side: a
// "_between" parameter is inclusive on both ends, a merged gt/lt pair is
// exclusive on both, and a calendar-day window is inclusive at the start
// and exclusive at the end.
type Range struct {
	Min, Max any
	MinIncl  bool
	MaxIncl  bool
}

// None matches no record. It is what malformed numeric or date input
// coerces to, so an unparsable bound filters everything out instead of
// failing the request.
type None struct{}

func (Equals) predicate()      {}
func (Contains) predicate()    {}
func (In) predicate()          {}
func (GreaterThan) predicate() {}
func (LessThan) predicate()    {}
func (Range) predicate()       {}
func (None) predicate()        {}
