// Package console implements the text-command interpreter core: it tokenizes
// a typed line, resolves the first token against a registry of named
// commands, validates argument count against the command's declared arity,
// and invokes the handler with lazily-typed arguments. A parallel variable
// registry exposes named external values with type-directed coercion.
//
// Failures never cross the dispatch boundary as panics or errors; every
// user-input problem is reported through a single last-error slot that
// callers inspect after RunLine returns. Panics are reserved for host
// wiring bugs (duplicate variables, unknown variable access, nil enums).
//
// A Shell is single-threaded: registration happens during host init, and at
// most one RunLine may be in flight at a time. Hosts that need more
// serialize externally; independent shells (e.g. one per test) never share
// state.
package console

// Shell is one self-contained console context: the command registry, the
// variable registry, and the diagnostics slot. It deliberately avoids
// package-level state so multiple shells can coexist.
type Shell struct {
	diag Diagnostics
	cmds map[string]*Command
	vars map[string]Binding
}

// New returns an empty shell, ready for registration.
func New() *Shell {
	return &Shell{
		cmds: make(map[string]*Command),
		vars: make(map[string]Binding),
	}
}

// LastError returns the diagnostic issued by the most recent RunLine (or by
// registration/coercion calls since then), "" when there is none.
func (s *Shell) LastError() string { return s.diag.LastError() }

// Failed reports whether the most recent RunLine issued a diagnostic.
func (s *Shell) Failed() bool { return s.diag.Failed() }

// Issuef lets handlers report their own failures through the shared slot.
func (s *Shell) Issuef(format string, args ...any) {
	s.diag.Issuef(format, args...)
}

// RunLine interprets one line of user input: tokenize, resolve the command,
// check arity, invoke the handler. It has no return value; callers inspect
// LastError afterwards. An empty or all-space line is a silent no-op. A
// failed dispatch is terminal for that line — there is no retry.
func (s *Shell) RunLine(line string) {
	s.diag.reset()

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return
	}

	name := canonical(tokens[0])
	cmd, ok := s.cmds[name]
	if !ok {
		s.diag.Issuef("Command %s could not be found", name)
		return
	}

	if !s.checkArity(cmd, len(tokens)-1) {
		return
	}

	if cmd.placeholder() {
		s.diag.Issuef("%s is missing a handler", cmd.Name)
		return
	}

	cmd.Handler(newArgs(tokens[1:], &s.diag))
}

// checkArity validates count against the command's declared bounds, issuing
// the arity diagnostic (with the usage hint appended, when declared) on
// failure.
func (s *Shell) checkArity(cmd *Command, count int) bool {
	var label string
	var required int

	switch {
	case count < cmd.MinArgs:
		label, required = "at least", cmd.MinArgs
	case cmd.MaxArgs != -1 && count > cmd.MaxArgs:
		label, required = "at most", cmd.MaxArgs
	default:
		return true
	}
	if cmd.MinArgs == cmd.MaxArgs {
		label = "exactly"
	}

	plural := "s"
	if required == 1 {
		plural = ""
	}
	s.diag.Issuef("%s requires %s %d argument%s", cmd.Name, label, required, plural)
	if cmd.Usage != "" {
		s.diag.appendf("\n    -> Usage: %s", cmd.Usage)
	}
	return false
}
