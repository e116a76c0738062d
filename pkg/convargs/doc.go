// Package convargs implements command-line argument parsing for tools that
// convert a single source file into a target file.
//
// A Parser is configured with a flag Registry (named boolean switches) and an
// ExtensionPolicy (the accepted source and target file extensions). Parse
// classifies the raw argument vector into flag tokens and positional tokens,
// resolves the flags against the registry, and then resolves the positional
// tokens into a source path and a target path, consulting the filesystem for
// existence and directory checks along the way.
//
// Parse returns an immutable Result. Help and version requests are reported
// as a tagged Outcome on the Result rather than terminating the process, so
// the caller decides how to print and exit. Callers that prefer process-wide
// state over threading a Result through their program can use ParseGlobal,
// which mirrors the result into package-level variables.
package convargs
