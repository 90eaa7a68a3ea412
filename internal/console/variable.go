package console

import (
	"sort"
	"strconv"
	"strings"
)

// VarKind is the declared static type of a variable binding.
type VarKind int

const (
	VarString VarKind = iota
	VarInt
	VarFloat
	VarBool
	VarEnum
)

// String returns the kind name.
func (k VarKind) String() string {
	names := []string{"string", "int", "float", "bool", "enum"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Binding is a named external value reachable through a get/set capability
// pair. The storage belongs to the host; the shell never holds the value
// itself. Build bindings with the typed constructors below.
type Binding struct {
	kind VarKind
	enum *Enum // declared enum type when kind == VarEnum
	get  func() any
	set  func(raw string, diag *Diagnostics)
}

// Kind returns the binding's declared type.
func (b Binding) Kind() VarKind { return b.kind }

// StringVar binds a string-typed external value. Writes are a passthrough.
func StringVar(get func() string, set func(string)) Binding {
	return Binding{
		kind: VarString,
		get:  func() any { return get() },
		set:  func(raw string, _ *Diagnostics) { set(raw) },
	}
}

// IntVar binds an integer-typed external value. Writes coerce the raw string
// as a base-10 integer; a failed coercion issues a diagnostic and leaves the
// stored value untouched.
func IntVar(get func() int, set func(int)) Binding {
	return Binding{
		kind: VarInt,
		get:  func() any { return get() },
		set: func(raw string, diag *Diagnostics) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				diag.Issuef("Incorrect type for %s, expected <int>", raw)
				return
			}
			set(n)
		},
	}
}

// FloatVar binds a float-typed external value.
func FloatVar(get func() float64, set func(float64)) Binding {
	return Binding{
		kind: VarFloat,
		get:  func() any { return get() },
		set: func(raw string, diag *Diagnostics) {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				diag.Issuef("Incorrect type for %s, expected <float>", raw)
				return
			}
			set(f)
		},
	}
}

// BoolVar binds a bool-typed external value. Writes accept only the literals
// TRUE and FALSE, case-insensitively.
func BoolVar(get func() bool, set func(bool)) Binding {
	return Binding{
		kind: VarBool,
		get:  func() any { return get() },
		set: func(raw string, diag *Diagnostics) {
			switch strings.ToUpper(raw) {
			case "TRUE":
				set(true)
			case "FALSE":
				set(false)
			default:
				diag.Issuef("Incorrect type for %s, expected <bool>", raw)
			}
		},
	}
}

// EnumVar binds a variable of the declared enum type. Unlike Arg.Enum, writes
// match member names exactly: the declared type is host configuration, so the
// looser case-insensitive match is not extended here.
func EnumVar(e *Enum, get func() int, set func(int)) Binding {
	if e == nil {
		panic("console: EnumVar requires an enum type")
	}
	return Binding{
		kind: VarEnum,
		enum: e,
		get:  func() any { return e.MemberName(get()) },
		set: func(raw string, diag *Diagnostics) {
			v, ok := e.ParseExact(raw)
			if !ok {
				diag.Issuef("value %s not found in enum type %s", raw, e.name)
				return
			}
			set(v)
		},
	}
}

// RegisterVar adds a variable binding. Duplicate registration panics:
// declaring the same variable twice is broken host wiring, and silently
// keeping either binding could leave reads and writes pointed at the wrong
// storage. This intentionally differs from Register's skip-and-report policy.
func (s *Shell) RegisterVar(name string, b Binding) {
	key := canonical(name)
	if _, ok := s.vars[key]; ok {
		panic("console: variable " + key + " is already defined")
	}
	s.vars[key] = b
}

// Var reads a variable's current value through its get capability. Unknown
// names panic: requesting a variable that was never registered is host
// misconfiguration, not user input.
func (s *Shell) Var(name string) any {
	b, ok := s.vars[canonical(name)]
	if !ok {
		panic("console: variable " + canonical(name) + " is not defined")
	}
	return b.get()
}

// SetVar writes a variable through its set capability, coercing raw according
// to the binding's declared type. The name must be registered (unknown names
// panic, as in Var); the value is user input, so a failed coercion issues a
// diagnostic and leaves the stored value untouched rather than failing fast.
func (s *Shell) SetVar(name, raw string) {
	key := canonical(name)
	b, ok := s.vars[key]
	if !ok {
		panic("console: variable " + key + " is not defined")
	}
	b.set(raw, &s.diag)
}

// HasVar reports whether a variable is registered. Hosts whose commands take
// variable names from user input check this before Var/SetVar, which treat an
// unknown name as a wiring bug and panic.
func (s *Shell) HasVar(name string) bool {
	_, ok := s.vars[canonical(name)]
	return ok
}

// VarNames returns the registered variable names, sorted.
func (s *Shell) VarNames() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
