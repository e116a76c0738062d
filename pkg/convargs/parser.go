package convargs

import (
	"fmt"
	"io"
	"log/slog"
)

// Options configures a Parser.
type Options struct {
	// Registry is the flag set the parser recognizes. Required.
	Registry *Registry
	// Policy is the accepted-extension policy. Required.
	Policy ExtensionPolicy
	// FS supplies filesystem queries. Defaults to OSFileSystem.
	FS FileSystem
	// ProgramName appears in generated help and version text. Defaults to
	// DefaultProgramName.
	ProgramName string
	// Version is the version string reported for the version flag.
	Version string
	// Logger receives debug records describing each parse. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// Parser turns a raw argument vector into a validated Result. Parses are
// synchronous and issue a bounded number of filesystem queries; because the
// registry's flag state is shared, concurrent Parse calls on the same Parser
// must be serialized by the caller.
type Parser struct {
	opts Options
	log  *slog.Logger
}

// New builds a Parser from opts, filling in the default filesystem and
// logger. Registry and Policy validity is checked by Parse, not here, so a
// misconfigured Parser fails on first use with ErrConfigValidation.
func New(opts Options) *Parser {
	if opts.FS == nil {
		opts.FS = OSFileSystem{}
	}
	if opts.ProgramName == "" {
		opts.ProgramName = DefaultProgramName
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{opts: opts, log: log}
}

// Parse consumes the raw arguments (excluding the program name) and resolves
// them into a Result.
//
// A configuration problem (invalid registry or policy) is returned as an
// error wrapping ErrConfigValidation and is fatal for the host program. A
// usage problem is returned as a *UsageError wrapping one of the usage
// sentinels; the first violation wins and no further validation happens. A
// lone help or version flag yields a nil error and a Result whose Outcome
// tells the caller which informational text to print before exiting.
func (p *Parser) Parse(args []string) (Result, error) {
	if err := p.checkConfig(); err != nil {
		return Result{}, err
	}
	p.opts.Registry.Reset()

	flagTokens, positionals := Classify(args)
	p.log.Debug("classified arguments",
		slog.Int("flag_tokens", len(flagTokens)),
		slog.Int("positional_tokens", len(positionals)))

	outcome, err := resolveFlags(p.opts.Registry, flagTokens, len(positionals))
	if err != nil {
		return Result{}, err
	}
	if outcome != OutcomeContinue {
		p.log.Debug("informational outcome", slog.String("outcome", outcome.String()))
		return Result{Outcome: outcome, Flags: p.opts.Registry.snapshot()}, nil
	}

	source, target, dirMode, err := resolvePaths(p.opts.FS, p.opts.Policy, positionals)
	if err != nil {
		return Result{}, err
	}
	p.log.Debug("resolved paths",
		slog.String("source", source),
		slog.String("target", target),
		slog.Bool("directory_mode", dirMode))

	return Result{
		Source:        source,
		Target:        target,
		DirectoryMode: dirMode,
		Outcome:       OutcomeContinue,
		Flags:         p.opts.Registry.snapshot(),
	}, nil
}

// checkConfig revalidates the registry and policy. It runs at the start of
// every parse so a host program that mutated its setup fails loudly instead
// of resolving paths against a broken policy.
func (p *Parser) checkConfig() error {
	if p.opts.Registry == nil {
		return fmt.Errorf("%w: no flag registry", ErrConfigValidation)
	}
	if err := p.opts.Registry.validate(); err != nil {
		return err
	}
	return p.opts.Policy.validate()
}
