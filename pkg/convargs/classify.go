package convargs

// Classify partitions the raw argument list (excluding the program name) into
// flag tokens and positional tokens, preserving relative order within each
// partition. A non-empty token whose first character is '-' is a flag token;
// everything else is positional. Empty tokens are discarded silently. The
// function is pure and never fails; no registry or filesystem access happens
// here.
func Classify(args []string) (flagTokens, positionals []string) {
	for _, arg := range args {
		switch {
		case arg == "":
		case arg[0] == flagPrefix:
			flagTokens = append(flagTokens, arg)
		default:
			positionals = append(positionals, arg)
		}
	}
	return flagTokens, positionals
}
