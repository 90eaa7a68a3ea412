package console

import "strings"

// Enum is a named, ordered set of member names standing in for a language
// enumeration. Member values are the declaration indexes, so the first member
// is the zero/default value returned by failed coercions.
type Enum struct {
	name    string
	members []string
	values  map[string]int // canonical upper-case member name -> value
}

// NewEnum declares an enumeration with the given type name and members.
// Member values are assigned in declaration order starting at 0. At least one
// member is required; duplicate member names (case-insensitive) panic since
// the declaration is host code, not user input.
func NewEnum(name string, members ...string) *Enum {
	if name == "" {
		panic("console: enum requires a type name")
	}
	if len(members) == 0 {
		panic("console: enum " + name + " requires at least one member")
	}
	e := &Enum{
		name:    name,
		members: append([]string(nil), members...),
		values:  make(map[string]int, len(members)),
	}
	for i, m := range members {
		key := strings.ToUpper(m)
		if _, dup := e.values[key]; dup {
			panic("console: enum " + name + " declares duplicate member " + m)
		}
		e.values[key] = i
	}
	return e
}

// TypeName returns the enumeration's type name.
func (e *Enum) TypeName() string { return e.name }

// Members returns the member names in declaration order.
func (e *Enum) Members() []string {
	return append([]string(nil), e.members...)
}

// Parse resolves a raw string to a member value by case-insensitive name match.
func (e *Enum) Parse(raw string) (int, bool) {
	v, ok := e.values[strings.ToUpper(raw)]
	return v, ok
}

// ParseExact resolves a raw string to a member value by exact name match.
// Variable bindings with a declared enum type use this stricter form.
func (e *Enum) ParseExact(raw string) (int, bool) {
	for i, m := range e.members {
		if m == raw {
			return i, true
		}
	}
	return 0, false
}

// MemberName returns the declared name for a member value, or "" if the value
// is out of range.
func (e *Enum) MemberName(value int) string {
	if value < 0 || value >= len(e.members) {
		return ""
	}
	return e.members[value]
}

// Default returns the enumeration's zero member value.
func (e *Enum) Default() int { return 0 }
