// Package builtin registers devcon's stock commands through the console's
// explicit registration API. It is the imperative counterpart of the
// attribute-scanning discovery the console core deliberately does not do:
// anything a host wants registered, something calls Register for.
package builtin

import (
	"fmt"
	"strings"

	"devcon/internal/console"
)

// Printer receives command output. The interactive host appends to its
// transcript; the exec subcommand writes to stdout.
type Printer interface {
	// Printf emits plain text.
	Printf(format string, args ...any)
	// Markdown emits text the host may render as markdown (HELP tables).
	Markdown(md string)
}

// Options wires builtins to host capabilities. Nil funcs leave the
// corresponding command unregistered rather than registering a dead one.
type Options struct {
	Quit     func()                        // QUIT
	Clear    func()                        // CLEAR transcript
	History  func(n int) ([]string, error) // HISTORY, newest first
	EchoArgs func() bool                   // ECHO prints one numbered argument per line when true
}

// RegisterAll registers the stock command set on sh.
func RegisterAll(sh *console.Shell, p Printer, opts Options) {
	sh.Register(console.Command{
		Name:    "help",
		MinArgs: 0,
		MaxArgs: 1,
		Help:    "Show all commands, or detail for one command",
		Usage:   "help [command]",
		Handler: func(args []console.Arg) { helpHandler(sh, p, args) },
	})

	sh.Register(console.Command{
		Name:    "commands",
		MinArgs: 0,
		MaxArgs: 0,
		Help:    "List command names",
		Handler: func([]console.Arg) {
			var names []string
			for _, c := range sh.Commands(false) {
				names = append(names, c.Name)
			}
			p.Printf("%s", strings.Join(names, " "))
		},
	})

	sh.Register(console.Command{
		Name:    "vars",
		MinArgs: 0,
		MaxArgs: 0,
		Help:    "List variable names",
		Handler: func([]console.Arg) {
			p.Printf("%s", strings.Join(sh.VarNames(), " "))
		},
	})

	sh.Register(console.Command{
		Name:    "get",
		MinArgs: 1,
		MaxArgs: 1,
		Help:    "Print a variable's current value",
		Usage:   "get <variable>",
		Handler: func(args []console.Arg) {
			name := args[0].String()
			if !sh.HasVar(name) {
				sh.Issuef("Variable %s could not be found", strings.ToUpper(name))
				return
			}
			p.Printf("%v", sh.Var(name))
		},
	})

	sh.Register(console.Command{
		Name:    "set",
		MinArgs: 2,
		MaxArgs: 2,
		Help:    "Set a variable from a string value",
		Usage:   "set <variable> <value>",
		Handler: func(args []console.Arg) {
			name := args[0].String()
			if !sh.HasVar(name) {
				sh.Issuef("Variable %s could not be found", strings.ToUpper(name))
				return
			}
			sh.SetVar(name, args[1].String())
		},
	})

	sh.Register(console.Command{
		Name:    "echo",
		MinArgs: 1,
		MaxArgs: -1,
		Help:    "Print the arguments back",
		Usage:   "echo <words...>",
		Handler: func(args []console.Arg) {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.String()
			}
			if opts.EchoArgs != nil && opts.EchoArgs() {
				for i, part := range parts {
					p.Printf("[%d] %s", i, part)
				}
				return
			}
			p.Printf("%s", strings.Join(parts, " "))
		},
	})

	if opts.History != nil {
		sh.Register(console.Command{
			Name:    "history",
			MinArgs: 0,
			MaxArgs: 1,
			Help:    "Show recent input lines",
			Usage:   "history [count]",
			Handler: func(args []console.Arg) {
				n := 10
				if len(args) == 1 {
					n = args[0].Int()
					if sh.Failed() {
						return
					}
					if n < 0 {
						sh.Issuef("history count must not be negative")
						return
					}
				}
				lines, err := opts.History(n)
				if err != nil {
					sh.Issuef("history is unavailable: %v", err)
					return
				}
				p.Printf("%s", strings.Join(lines, "\n"))
			},
		})
	}

	if opts.Clear != nil {
		sh.Register(console.Command{
			Name:    "clear",
			MinArgs: 0,
			MaxArgs: 0,
			Help:    "Clear the transcript",
			Handler: func([]console.Arg) { opts.Clear() },
		})
	}

	if opts.Quit != nil {
		sh.Register(console.Command{
			Name:    "quit",
			MinArgs: 0,
			MaxArgs: 0,
			Help:    "Exit the console",
			Handler: func([]console.Arg) { opts.Quit() },
		})
	}
}

// helpHandler prints the command table, or one command's detail.
func helpHandler(sh *console.Shell, p Printer, args []console.Arg) {
	if len(args) == 1 {
		name := args[0].String()
		cmd, ok := sh.Lookup(name)
		if !ok {
			sh.Issuef("Command %s could not be found", strings.ToUpper(name))
			return
		}
		var b strings.Builder
		fmt.Fprintf(&b, "**%s** — %s\n", cmd.Name, describe(cmd))
		if cmd.Usage != "" {
			fmt.Fprintf(&b, "\nUsage: `%s`\n", cmd.Usage)
		}
		p.Markdown(b.String())
		return
	}

	var b strings.Builder
	b.WriteString("## Commands\n\n")
	b.WriteString("| Command | Description |\n|---------|-------------|\n")
	for _, c := range sh.Commands(false) {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Name, describe(c))
	}
	p.Markdown(b.String())
}

func describe(c console.Command) string {
	if c.Help != "" {
		return c.Help
	}
	return "(no help)"
}
