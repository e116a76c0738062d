package convargs

// Outcome is the tagged terminal state of a successful parse. Help and
// version requests divert control instead of producing a conversion plan, so
// callers must check the outcome before using Source and Target.
type Outcome int

const (
	// OutcomeContinue means paths were resolved and the caller should run
	// its conversion logic.
	OutcomeContinue Outcome = iota
	// OutcomeShowHelp means the help flag was the sole argument; the caller
	// should print the help text and exit with status 0.
	OutcomeShowHelp
	// OutcomeShowVersion means the version flag was the sole argument; the
	// caller should print the version text and exit with status 0.
	OutcomeShowVersion
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeShowHelp:
		return "show-help"
	case OutcomeShowVersion:
		return "show-version"
	default:
		return "unknown"
	}
}

// Result is the immutable value produced by one parse call.
//
// In file mode Source and Target are both populated. In directory mode
// Source names an existing directory, Target is empty, and the caller is
// expected to enumerate the directory's files itself. Flags holds the final
// state of every registered flag after the parse.
type Result struct {
	Source        string
	Target        string
	DirectoryMode bool
	Outcome       Outcome
	Flags         map[string]bool
}
