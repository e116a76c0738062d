package convargs

import (
	"path/filepath"
	"strings"
)

// resolveFlags matches each flag token against the registry and decides the
// terminal outcome. An unknown flag fails immediately; remaining tokens are
// not processed. Matching a flag enables it; repeated flags each count toward
// the seen total. A help or version flag is only valid on its own: combined
// with another flag or any positional token it is rejected as too many
// arguments. Help wins when both help and version are enabled.
func resolveFlags(reg *Registry, flagTokens []string, positionals int) (Outcome, error) {
	seen := 0
	for _, tok := range flagTokens {
		name := strings.TrimPrefix(tok, "-")
		name = strings.TrimPrefix(name, "-")
		if !reg.set(name) {
			return OutcomeContinue, usageErr(ErrUnknownFlag, tok)
		}
		seen++
	}

	if reg.Enabled(FlagHelp) || reg.Enabled(FlagVersion) {
		if seen > 1 || positionals > 0 {
			return OutcomeContinue, usageErr(ErrTooManyArguments, "")
		}
		if reg.Enabled(FlagHelp) {
			return OutcomeShowHelp, nil
		}
		return OutcomeShowVersion, nil
	}
	return OutcomeContinue, nil
}

// resolvePaths turns the positional tokens into a (source, target) pair under
// the extension policy, consulting fs for existence and directory checks.
//
// The first token is the candidate source. An existing directory selects
// directory mode, which excludes a target argument and short-circuits all
// extension validation. Otherwise the source must exist and carry an accepted
// extension, and the target defaults to the source path with the default
// target extension. A second token overrides the target: a bare filename is
// placed next to the source rather than in the working directory, and an
// extension-less override is always read as a target directory, never as an
// extension-less filename.
func resolvePaths(fs FileSystem, policy ExtensionPolicy, positionals []string) (source, target string, dirMode bool, err error) {
	switch {
	case len(positionals) == 0:
		return "", "", false, usageErr(ErrNoSource, "")
	case len(positionals) > 2:
		return "", "", false, usageErr(ErrTooManyArguments, "")
	}

	source = positionals[0]
	if fs.IsDir(source) {
		if len(positionals) > 1 {
			return "", "", false, usageErr(ErrTooManyArguments, "")
		}
		return source, "", true, nil
	}

	if !fs.Exists(source) {
		return "", "", false, usageErr(ErrSourceNotFound, source)
	}
	if !policy.AllowsSource(pathExt(source)) {
		return "", "", false, usageErr(ErrSourceExtension, source)
	}

	target = replaceExt(source, policy.DefaultTarget())

	if len(positionals) == 2 {
		override := positionals[1]
		if filepath.Base(override) == override {
			// Bare filenames land next to the source, not in the working
			// directory.
			override = filepath.Join(filepath.Dir(source), override)
		}
		if !fs.IsDir(filepath.Dir(override)) {
			if pathExt(override) != "" {
				return "", "", false, usageErr(ErrTargetDirUnknown, override)
			}
			return "", "", false, usageErr(ErrTargetDirNotFound, override)
		}
		if pathExt(override) == "" {
			if !fs.IsDir(override) {
				return "", "", false, usageErr(ErrTargetDirNotFound, override)
			}
			target = filepath.Join(override, replaceExt(filepath.Base(source), policy.DefaultTarget()))
		} else {
			target = override
		}
	}

	// Plain string comparison, not canonical-path equivalence: textually
	// different aliases of the same file are not caught.
	if strings.EqualFold(source, target) {
		return "", "", false, usageErr(ErrSameSourceTarget, "")
	}
	if !policy.AllowsTarget(pathExt(target)) {
		return "", "", false, usageErr(ErrTargetExtension, target)
	}
	return source, target, false, nil
}
