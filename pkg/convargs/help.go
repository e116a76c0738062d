package convargs

import (
	"fmt"
	"strings"
)

// HelpText assembles the usage text from the live registry and extension
// policy: the invocation line, one line per registered flag, the accepted
// extension lists, and the default-target note.
func (p *Parser) HelpText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [options] <source_file> [target_file]\n\n", p.opts.ProgramName)

	b.WriteString("Options:\n")
	for _, f := range p.opts.Registry.Flags() {
		fmt.Fprintf(&b, "  -%-12s %s\n", f.Name, f.Usage)
	}

	b.WriteString("\nFile extensions:\n")
	fmt.Fprintf(&b, "  Source: %s\n", strings.Join(p.opts.Policy.Source, ", "))
	fmt.Fprintf(&b, "  Target: %s\n", strings.Join(p.opts.Policy.Target, ", "))

	b.WriteString("\nNotes:\n")
	b.WriteString("  If target_file is omitted, output defaults to the source name with the default target extension.\n")
	return b.String()
}

// VersionText returns the informational text for the version flag.
func (p *Parser) VersionText() string {
	return fmt.Sprintf("%s version: %s", p.opts.ProgramName, p.opts.Version)
}
