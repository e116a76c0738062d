package convargs_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/convargs/internal/testutil"
	"github.com/stackvity/convargs/pkg/convargs"
)

// newTestParser builds a parser with the convert/translate flag set and the
// txt/csv/json extension policy over the given filesystem.
func newTestParser(t *testing.T, fs convargs.FileSystem) *convargs.Parser {
	t.Helper()
	reg, err := convargs.NewRegistry(
		convargs.Flag{Name: "convert", Default: true},
		convargs.Flag{Name: "translate", Default: true},
		convargs.Flag{Name: "verbose"},
		convargs.Flag{Name: convargs.FlagHelp},
		convargs.Flag{Name: convargs.FlagVersion},
	)
	require.NoError(t, err)
	policy, err := convargs.NewExtensionPolicy(
		[]string{"txt", "csv", "json"},
		[]string{"csv", "json", "txt"},
	)
	require.NoError(t, err)
	return convargs.New(convargs.Options{
		Registry:    reg,
		Policy:      policy,
		FS:          fs,
		ProgramName: "fileconv",
		Version:     "1.0.0",
	})
}

func defaultFlagStates() map[string]bool {
	return map[string]bool{
		"convert":   true,
		"translate": true,
		"verbose":   false,
		"help":      false,
		"version":   false,
	}
}

func TestParseSuccess(t *testing.T) {
	fs := testutil.NewFakeFS(
		[]string{"report.txt", "data/input.csv"},
		[]string{"out", "data", "reports"},
	)

	tests := []struct {
		name  string
		args  []string
		want  convargs.Result
		flags func(map[string]bool)
	}{
		{
			name: "default target derived from source",
			args: []string{"report.txt"},
			want: convargs.Result{Source: "report.txt", Target: "report.csv"},
		},
		{
			name: "target directory argument",
			args: []string{"report.txt", "out"},
			want: convargs.Result{Source: "report.txt", Target: "out/report.csv"},
		},
		{
			name: "explicit target file",
			args: []string{"report.txt", "result.json"},
			want: convargs.Result{Source: "report.txt", Target: "result.json"},
		},
		{
			name: "bare target filename lands next to the source",
			args: []string{"data/input.csv", "output.json"},
			want: convargs.Result{Source: "data/input.csv", Target: "data/output.json"},
		},
		{
			name: "directory mode has no target",
			args: []string{"reports"},
			want: convargs.Result{Source: "reports", DirectoryMode: true},
		},
		{
			name:  "flag toggles are reflected in the result",
			args:  []string{"-verbose", "report.txt"},
			want:  convargs.Result{Source: "report.txt", Target: "report.csv"},
			flags: func(m map[string]bool) { m["verbose"] = true },
		},
		{
			name: "double-dash flag form",
			args: []string{"--convert", "report.txt"},
			want: convargs.Result{Source: "report.txt", Target: "report.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, fs)
			got, err := p.Parse(tt.args)
			require.NoError(t, err)

			tt.want.Outcome = convargs.OutcomeContinue
			tt.want.Flags = defaultFlagStates()
			if tt.flags != nil {
				tt.flags(tt.want.Flags)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseUsageErrors(t *testing.T) {
	fs := testutil.NewFakeFS(
		[]string{"report.txt", "report.bad"},
		[]string{"out", "reports"},
	)

	tests := []struct {
		name      string
		args      []string
		wantErr   error
		wantToken string
	}{
		{
			name:    "no arguments",
			args:    nil,
			wantErr: convargs.ErrNoSource,
		},
		{
			name:    "three positional tokens",
			args:    []string{"a.txt", "b.csv", "c.json"},
			wantErr: convargs.ErrTooManyArguments,
		},
		{
			name:      "unknown flag",
			args:      []string{"-bogus", "report.txt"},
			wantErr:   convargs.ErrUnknownFlag,
			wantToken: "-bogus",
		},
		{
			name:      "triple dash is not a flag prefix",
			args:      []string{"---help"},
			wantErr:   convargs.ErrUnknownFlag,
			wantToken: "---help",
		},
		{
			name:    "help combined with a positional token",
			args:    []string{"-help", "report.txt"},
			wantErr: convargs.ErrTooManyArguments,
		},
		{
			name:    "help combined with version",
			args:    []string{"-help", "-version"},
			wantErr: convargs.ErrTooManyArguments,
		},
		{
			name:    "repeated help counts twice",
			args:    []string{"-help", "-help"},
			wantErr: convargs.ErrTooManyArguments,
		},
		{
			name:    "directory source with a target argument",
			args:    []string{"reports", "out"},
			wantErr: convargs.ErrTooManyArguments,
		},
		{
			name:      "missing source file",
			args:      []string{"missing.txt"},
			wantErr:   convargs.ErrSourceNotFound,
			wantToken: "missing.txt",
		},
		{
			name:      "source extension not accepted",
			args:      []string{"report.bad"},
			wantErr:   convargs.ErrSourceExtension,
			wantToken: "report.bad",
		},
		{
			name:      "target file in a missing directory",
			args:      []string{"report.txt", "nodir/out.csv"},
			wantErr:   convargs.ErrTargetDirUnknown,
			wantToken: "nodir/out.csv",
		},
		{
			name:      "target directory does not exist",
			args:      []string{"report.txt", "nodir"},
			wantErr:   convargs.ErrTargetDirNotFound,
			wantToken: "nodir",
		},
		{
			name:    "source and target are the same file",
			args:    []string{"report.txt", "report.txt"},
			wantErr: convargs.ErrSameSourceTarget,
		},
		{
			name:    "same file differs only in case",
			args:    []string{"report.txt", "Report.TXT"},
			wantErr: convargs.ErrSameSourceTarget,
		},
		{
			name:      "target extension not accepted",
			args:      []string{"report.txt", "out.pdf"},
			wantErr:   convargs.ErrTargetExtension,
			wantToken: "out.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, fs)
			_, err := p.Parse(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var usage *convargs.UsageError
			require.ErrorAs(t, err, &usage, "usage failures must be UsageError values")
			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, usage.Token)
				assert.Contains(t, err.Error(), tt.wantToken, "diagnostic must name the offending token")
			}
		})
	}
}

func TestParseInformationalOutcomes(t *testing.T) {
	fs := testutil.NewFakeFS(nil, nil)

	tests := []struct {
		name string
		args []string
		want convargs.Outcome
	}{
		{name: "help alone", args: []string{"-help"}, want: convargs.OutcomeShowHelp},
		{name: "version alone", args: []string{"-version"}, want: convargs.OutcomeShowVersion},
		{name: "double-dash version", args: []string{"--version"}, want: convargs.OutcomeShowVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, fs)
			res, err := p.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Outcome)
			assert.Empty(t, res.Source)
			assert.Empty(t, res.Target)
		})
	}
}

// TestParseFailsBeforeFilesystemAccess proves that flag-resolution failures
// are reported before any filesystem query happens: the mock has no
// expectations, so any query would fail the test.
func TestParseFailsBeforeFilesystemAccess(t *testing.T) {
	m := &testutil.MockFileSystem{}
	p := newTestParser(t, m)

	_, err := p.Parse([]string{"-bogus", "report.txt"})
	assert.ErrorIs(t, err, convargs.ErrUnknownFlag)

	_, err = p.Parse([]string{"-help", "report.txt"})
	assert.ErrorIs(t, err, convargs.ErrTooManyArguments)

	m.AssertExpectations(t)
}

// TestParseIdempotent re-resolves a parse result as a fresh two-token input
// and expects the same target.
func TestParseIdempotent(t *testing.T) {
	fs := testutil.NewFakeFS([]string{"report.txt"}, nil)
	p := newTestParser(t, fs)

	first, err := p.Parse([]string{"report.txt"})
	require.NoError(t, err)

	second, err := p.Parse([]string{first.Source, first.Target})
	require.NoError(t, err)
	assert.Equal(t, first.Target, second.Target)
}

func TestParseConfigErrors(t *testing.T) {
	fs := testutil.NewFakeFS(nil, nil)

	t.Run("nil registry", func(t *testing.T) {
		p := convargs.New(convargs.Options{FS: fs})
		_, err := p.Parse([]string{"report.txt"})
		require.Error(t, err)
		assert.ErrorIs(t, err, convargs.ErrConfigValidation)
	})

	t.Run("overlapping lists with disjoint policy", func(t *testing.T) {
		reg, err := convargs.NewRegistry(
			convargs.Flag{Name: "convert", Default: true},
			convargs.Flag{Name: convargs.FlagHelp},
			convargs.Flag{Name: convargs.FlagVersion},
		)
		require.NoError(t, err)
		policy, err := convargs.NewExtensionPolicy([]string{"txt", "csv"}, []string{"csv"})
		require.NoError(t, err)
		policy.RequireDisjoint = true

		p := convargs.New(convargs.Options{Registry: reg, Policy: policy, FS: fs})
		_, err = p.Parse([]string{"report.txt"})
		require.Error(t, err)
		assert.ErrorIs(t, err, convargs.ErrConfigValidation)
	})
}

// TestParseResetsFlagState runs two parses on one parser and checks that the
// second parse starts from the declared defaults again.
func TestParseResetsFlagState(t *testing.T) {
	fs := testutil.NewFakeFS([]string{"report.txt"}, nil)
	p := newTestParser(t, fs)

	res, err := p.Parse([]string{"-verbose", "report.txt"})
	require.NoError(t, err)
	require.True(t, res.Flags["verbose"])

	res, err = p.Parse([]string{"report.txt"})
	require.NoError(t, err)
	assert.False(t, res.Flags["verbose"], "flag state must reset between parses")
}

func TestDirectoryModeIgnoresExtensionPolicy(t *testing.T) {
	// The directory has no extension and would fail every extension check;
	// directory detection must short-circuit first.
	fs := testutil.NewFakeFS(nil, []string{"reports"})
	p := newTestParser(t, fs)

	res, err := p.Parse([]string{"reports"})
	require.NoError(t, err)
	assert.True(t, res.DirectoryMode)
	assert.Equal(t, "reports", res.Source)
	assert.Empty(t, res.Target)
}

func TestUsageErrorUnwrap(t *testing.T) {
	err := &convargs.UsageError{Reason: convargs.ErrUnknownFlag, Token: "-x"}
	assert.True(t, errors.Is(err, convargs.ErrUnknownFlag))
	assert.Equal(t, "unknown flag: -x", err.Error())
}
