package console

import "fmt"

// Diagnostics is a single-slot holder for the last error issued during one
// dispatch. Any stage (registry, arity check, argument coercion, handler) may
// write to it; the most recent write wins. It is reset at the top of every
// Shell.RunLine call and must not be shared across concurrent dispatches.
type Diagnostics struct {
	last string
}

// Issuef formats a message and stores it as the last issued error,
// replacing any previous one.
func (d *Diagnostics) Issuef(format string, args ...any) {
	d.last = fmt.Sprintf(format, args...)
}

// appendf extends the current message in place. Used for the usage-hint line
// that arity failures attach to their primary message.
func (d *Diagnostics) appendf(format string, args ...any) {
	d.last += fmt.Sprintf(format, args...)
}

// LastError returns the last issued message, or "" when the most recent
// dispatch completed without issuing one.
func (d *Diagnostics) LastError() string {
	return d.last
}

// Failed reports whether a diagnostic was issued since the last reset.
func (d *Diagnostics) Failed() bool {
	return d.last != ""
}

func (d *Diagnostics) reset() {
	d.last = ""
}
