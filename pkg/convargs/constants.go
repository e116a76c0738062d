package convargs

const (
	// FlagHelp is the name of the mandatory help flag. When it is the only
	// argument supplied, Parse reports OutcomeShowHelp.
	FlagHelp = "help"

	// FlagVersion is the name of the mandatory version flag. When it is the
	// only argument supplied, Parse reports OutcomeShowVersion.
	FlagVersion = "version"

	// MinRegistryFlags is the smallest registry a Parser accepts: help,
	// version, and at least one flag of the host tool's own.
	MinRegistryFlags = 3

	// DefaultProgramName is used in help and version text when Options does
	// not name the program.
	DefaultProgramName = "program"

	// flagPrefix marks a raw argument as a flag token.
	flagPrefix = '-'
)
