package notifier

import (
	"fmt"
	"io"
)

// DryRunNotifier prints what would be sent without actually sending
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the message that would be sent
func (n *DryRunNotifier) Notify(message string) error {
	fmt.Fprintln(n.out, "--- Notification (dry run) ---")
	fmt.Fprintln(n.out, message)
	fmt.Fprintf(n.out, "\n(Length: %d characters)\n", len(message))
	return nil
}
