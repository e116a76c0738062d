package convargs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigValidation indicates that the Registry or ExtensionPolicy the
	// Parser was built with is invalid (missing mandatory flags, too few
	// flags, empty extension lists). It signals a misconfigured host program
	// rather than bad user input and is checked at the start of every parse.
	ErrConfigValidation = errors.New("invalid parser configuration")

	// ErrUnknownFlag indicates a flag token that matches no registered flag.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrTooManyArguments indicates more positional tokens than the parser
	// accepts, a target argument combined with a directory source, or a
	// help/version flag combined with any other argument.
	ErrTooManyArguments = errors.New("too many arguments")

	// ErrNoSource indicates that no positional token was supplied.
	ErrNoSource = errors.New("no source file specified")

	// ErrSourceNotFound indicates that the source path does not exist.
	ErrSourceNotFound = errors.New("could not find the source file")

	// ErrSourceExtension indicates a source file whose extension is not in
	// the source extension list.
	ErrSourceExtension = errors.New("source file has an invalid extension")

	// ErrTargetDirUnknown indicates a target file argument whose parent
	// directory does not exist.
	ErrTargetDirUnknown = errors.New("target file has unknown directory")

	// ErrTargetDirNotFound indicates a target directory argument that does
	// not exist.
	ErrTargetDirNotFound = errors.New("target directory does not exist")

	// ErrSameSourceTarget indicates that the resolved source and target paths
	// are equal under case-insensitive string comparison.
	ErrSameSourceTarget = errors.New("source and target files are the same")

	// ErrTargetExtension indicates a resolved target whose extension is not
	// in the target extension list.
	ErrTargetExtension = errors.New("target file has an invalid extension")
)

// UsageError is a recoverable problem with the user-supplied arguments. The
// caller may report the diagnostic and retry with corrected input. Reason is
// always one of the usage sentinel errors above, so callers can categorize
// with errors.Is; Token names the offending flag token or path when one
// applies.
type UsageError struct {
	Reason error
	Token  string
}

// Error renders a single-line diagnostic naming the offending token or path.
func (e *UsageError) Error() string {
	if e.Token == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Reason.Error(), e.Token)
}

// Unwrap exposes the sentinel category for errors.Is.
func (e *UsageError) Unwrap() error { return e.Reason }

func usageErr(reason error, token string) error {
	return &UsageError{Reason: reason, Token: token}
}
