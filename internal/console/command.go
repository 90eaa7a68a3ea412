package console

import (
	"sort"
	"strings"
)

// Handler executes a resolved command with its arguments in original order.
// Handlers report user-facing failures through the shell's diagnostics (often
// implicitly, via Arg coercions); they do not return errors across the
// dispatch boundary.
type Handler func(args []Arg)

// Command is one registered console command. Name is stored canonicalized to
// upper-case. MaxArgs of -1 means unbounded. A nil Handler marks a
// placeholder: an arity/help-only record waiting for a real handler.
type Command struct {
	Name    string
	Handler Handler
	MinArgs int
	MaxArgs int
	Help    string
	Usage   string // optional usage hint shown on arity failures
	Secret  bool   // hidden from listings, still invocable
}

// placeholder reports whether the command has no bound handler yet.
func (c *Command) placeholder() bool { return c.Handler == nil }

// canonical upper-cases a command or variable name. Applied at every touch
// point so lookups are case-insensitive.
func canonical(name string) string { return strings.ToUpper(name) }

// InferName derives a command name from a raw identifier by stripping a
// case-insensitive literal "COMMAND" substring, e.g. "QuitCommand" -> "QUIT".
// This is a naming convenience for discovery layers; Register itself never
// applies it.
func InferName(identifier string) string {
	upper := canonical(identifier)
	if i := strings.Index(upper, "COMMAND"); i >= 0 {
		upper = upper[:i] + upper[i+len("COMMAND"):]
	}
	return upper
}

// Register adds a command. The name is canonicalized; MaxArgs of -1 means
// unbounded. Registering a name that already exists issues a diagnostic and
// leaves the existing entry untouched — unless the existing entry is a
// placeholder, in which case cmd's handler is installed and the placeholder's
// arity and help are adopted onto it.
func (s *Shell) Register(cmd Command) {
	if cmd.MaxArgs >= 0 && cmd.MinArgs > cmd.MaxArgs {
		panic("console: command " + cmd.Name + " declares min args greater than max args")
	}
	name := canonical(cmd.Name)
	cmd.Name = name

	if existing, ok := s.cmds[name]; ok {
		if !existing.placeholder() || cmd.Handler == nil {
			s.diag.Issuef("Command %s is already defined.", name)
			return
		}
		// Placeholder resolution: the real handler wins, the placeholder's
		// metadata is adopted.
		cmd.MinArgs = existing.MinArgs
		cmd.MaxArgs = existing.MaxArgs
		cmd.Help = existing.Help
		*existing = cmd
		return
	}

	c := cmd
	s.cmds[name] = &c
}

// RegisterPlaceholder records arity and help for a command whose handler is
// supplied separately (e.g. by an adapter that binds arguments per field). A
// later Register with the same name installs the real handler; until then the
// command cannot be invoked.
func (s *Shell) RegisterPlaceholder(name string, minArgs, maxArgs int, help string) {
	s.Register(Command{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Help: help})
}

// Unresolved returns the names of placeholder commands that never received a
// handler, sorted. Callers surface each as "<name> is missing a handler" once
// registration is complete.
func (s *Shell) Unresolved() []string {
	var names []string
	for name, c := range s.cmds {
		if c.placeholder() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a command by name, case-insensitively.
func (s *Shell) Lookup(name string) (Command, bool) {
	c, ok := s.cmds[canonical(name)]
	if !ok {
		return Command{}, false
	}
	return *c, true
}

// Commands returns registered commands sorted by name. Secret commands are
// excluded unless includeSecret is set; they remain invocable either way.
func (s *Shell) Commands(includeSecret bool) []Command {
	list := make([]Command, 0, len(s.cmds))
	for _, c := range s.cmds {
		if c.Secret && !includeSecret {
			continue
		}
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
