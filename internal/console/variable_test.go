package console

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVariables_TypedRoundTrips(t *testing.T) {
	t.Parallel()
	sh := New()

	var (
		name   = "nobody"
		count  = 1
		ratio  = 0.5
		active = false
	)
	sh.RegisterVar("player", StringVar(
		func() string { return name },
		func(v string) { name = v },
	))
	sh.RegisterVar("count", IntVar(
		func() int { return count },
		func(v int) { count = v },
	))
	sh.RegisterVar("ratio", FloatVar(
		func() float64 { return ratio },
		func(v float64) { ratio = v },
	))
	sh.RegisterVar("active", BoolVar(
		func() bool { return active },
		func(v bool) { active = v },
	))

	sh.SetVar("PLAYER", "alice")
	sh.SetVar("count", "42")
	sh.SetVar("Ratio", "2.5")
	sh.SetVar("active", "TRUE")

	if name != "alice" || count != 42 || ratio != 2.5 || active != true {
		t.Errorf("host storage = (%q, %d, %v, %v), want (alice, 42, 2.5, true)",
			name, count, ratio, active)
	}
	if got := sh.Var("COUNT"); got != 42 {
		t.Errorf("Var(COUNT) = %v, want 42", got)
	}
}

func TestSetVar_CoercionFailureLeavesValue(t *testing.T) {
	t.Parallel()
	sh := New()
	count := 7
	sh.RegisterVar("count", IntVar(
		func() int { return count },
		func(v int) { count = v },
	))

	sh.SetVar("count", "abc")
	if count != 7 {
		t.Errorf("failed coercion mutated storage: count = %d, want 7", count)
	}
	if !strings.Contains(sh.LastError(), "expected <int>") {
		t.Errorf("LastError() = %q, want an <int> coercion diagnostic", sh.LastError())
	}
}

func TestSetVar_EnumExactMatch(t *testing.T) {
	t.Parallel()
	level := NewEnum("Level", "DEBUG", "INFO", "WARN", "ERROR")
	sh := New()
	current := 1
	sh.RegisterVar("loglevel", EnumVar(level,
		func() int { return current },
		func(v int) { current = v },
	))

	sh.SetVar("loglevel", "WARN")
	if current != 2 {
		t.Errorf("current = %d, want 2", current)
	}
	if got := sh.Var("loglevel"); got != "WARN" {
		t.Errorf("Var(loglevel) = %v, want WARN", got)
	}

	// Declared-type writes match member names exactly.
	sh.SetVar("loglevel", "warn")
	if current != 2 {
		t.Errorf("case-mismatched write mutated storage: current = %d", current)
	}
	if got, want := sh.LastError(), "value warn not found in enum type Level"; got != want {
		t.Errorf("LastError() = %q, want %q", got, want)
	}
}

func TestRegisterVar_DuplicatePanics(t *testing.T) {
	t.Parallel()
	sh := New()
	b := StringVar(func() string { return "" }, func(string) {})
	sh.RegisterVar("prompt", b)

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate RegisterVar did not panic")
		}
	}()
	sh.RegisterVar("PROMPT", b)
}

func TestVar_UnknownPanics(t *testing.T) {
	t.Parallel()
	sh := New()
	defer func() {
		if recover() == nil {
			t.Fatal("Var on unknown name did not panic")
		}
	}()
	sh.Var("nope")
}

func TestSetVar_UnknownPanics(t *testing.T) {
	t.Parallel()
	sh := New()
	defer func() {
		if recover() == nil {
			t.Fatal("SetVar on unknown name did not panic")
		}
	}()
	sh.SetVar("nope", "1")
}

func TestVarNames_Sorted(t *testing.T) {
	t.Parallel()
	sh := New()
	get := func() string { return "" }
	set := func(string) {}
	sh.RegisterVar("zoom", StringVar(get, set))
	sh.RegisterVar("alpha", StringVar(get, set))

	if diff := cmp.Diff([]string{"ALPHA", "ZOOM"}, sh.VarNames()); diff != "" {
		t.Errorf("VarNames() mismatch (-want +got):\n%s", diff)
	}
}
