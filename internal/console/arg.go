package console

import (
	"strconv"
	"strings"
)

// Arg wraps one raw input token and offers on-demand typed views of it.
// Every accessor is pure and repeatable: a failed coercion issues a
// diagnostic on the owning shell and returns the target type's zero value, so
// callers that ignore errors still get a deterministic result.
type Arg struct {
	raw  string
	diag *Diagnostics
}

// String returns the raw token unchanged.
func (a Arg) String() string { return a.raw }

// Int coerces the token as a base-10 integer (optional leading sign).
// On failure it issues a diagnostic and returns 0.
func (a Arg) Int() int {
	n, err := strconv.Atoi(a.raw)
	if err != nil {
		a.diag.Issuef("Incorrect type for %s, expected <int>", a.raw)
		return 0
	}
	return n
}

// Float coerces the token as a base-10 float (sign, decimal point, exponent).
// On failure it issues a diagnostic and returns 0.
func (a Arg) Float() float64 {
	f, err := strconv.ParseFloat(a.raw, 64)
	if err != nil {
		a.diag.Issuef("Incorrect type for %s, expected <float>", a.raw)
		return 0
	}
	return f
}

// Bool coerces the token against the literals TRUE and FALSE,
// case-insensitively. No truthy forms: "1", "yes" and friends fail.
func (a Arg) Bool() bool {
	switch strings.ToUpper(a.raw) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	default:
		a.diag.Issuef("Incorrect type for %s, expected <bool>", a.raw)
		return false
	}
}

// Enum coerces the token against e's member names, case-insensitively.
// On failure it issues a diagnostic and returns the enum's default member.
// Passing a nil enum is caller-side misuse and panics.
func (a Arg) Enum(e *Enum) int {
	if e == nil {
		panic("console: Arg.Enum called with nil enum")
	}
	v, ok := e.Parse(a.raw)
	if !ok {
		a.diag.Issuef("value %s not found in enum type %s", a.raw, e.name)
		return e.Default()
	}
	return v
}

// newArgs wraps raw tokens for one dispatch, sharing the shell's diagnostics.
func newArgs(tokens []string, diag *Diagnostics) []Arg {
	args := make([]Arg, len(tokens))
	for i, t := range tokens {
		args[i] = Arg{raw: t, diag: diag}
	}
	return args
}
