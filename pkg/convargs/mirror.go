package convargs

// Process-wide mirror of the most recent successful ParseGlobal call, for
// call sites that prefer not to thread a Result through their program. The
// mirror is cleared at the start of every ParseGlobal call and populated only
// on success; in directory mode the target stays empty. Parse itself never
// touches these variables. Like the registry's flag state, the mirror is not
// synchronized and concurrent parses must be serialized by the caller.
var (
	// Source is the resolved source path of the last successful parse.
	Source string
	// Target is the resolved target path of the last successful parse.
	// Empty in directory mode.
	Target string

	flagStates = map[string]bool{}
)

// Enabled reports the mirrored state of the named flag after the last
// ParseGlobal call. Unknown names report false.
func Enabled(name string) bool {
	return flagStates[name]
}

// ParseGlobal is a thin wrapper over Parser.Parse that mirrors the result
// into the package-level Source, Target, and flag-state variables.
func ParseGlobal(p *Parser, args []string) (Result, error) {
	Source, Target = "", ""
	clear(flagStates)

	res, err := p.Parse(args)
	if err != nil {
		return res, err
	}
	for name, on := range res.Flags {
		flagStates[name] = on
	}
	if res.Outcome != OutcomeContinue {
		return res, nil
	}
	Source = res.Source
	Target = res.Target
	return res, nil
}
