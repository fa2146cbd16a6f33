// Package hooks runs the shell command lines attached to a configuration
// entry's lifecycle phases.
//
// Each command line is split into words with POSIX shell quoting rules and
// executed directly, without a shell. A command that splits into no words
// is skipped.
package hooks

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"
)

// Options contains configuration for the runner
type Options struct {
	// WorkDir is the working directory of every command; empty inherits
	WorkDir string

	// Env holds KEY=VALUE pairs added on top of the process environment
	Env []string

	// Timeout bounds each command. Zero waits until the command exits.
	Timeout time.Duration

	// Stdout, when set, receives each command's captured output
	Stdout io.Writer

	DryRun bool
	Logger zerolog.Logger
}

// Result is the outcome of one command line
type Result struct {
	Command string   `json:"command" yaml:"command"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty"`
	Output  string   `json:"output,omitempty" yaml:"output,omitempty"`
	Skipped bool     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Planned bool     `json:"planned,omitempty" yaml:"planned,omitempty"`
}

// Runner executes hook command lines
type Runner struct {
	workDir string
	env     []string
	timeout time.Duration
	stdout  io.Writer
	dryRun  bool
	logger  zerolog.Logger
}

// New creates a new runner instance
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("hooks")
	}

	return &Runner{
		workDir: opts.WorkDir,
		env:     opts.Env,
		timeout: opts.Timeout,
		stdout:  opts.Stdout,
		dryRun:  opts.DryRun,
		logger:  logger,
	}
}

// RunAll runs commands in order and stops at the first failure. The
// returned results cover every command that ran, including the failing one.
// env is added to the environment of each command.
func (r *Runner) RunAll(ctx context.Context, commands []string, env ...string) ([]Result, error) {
	results := make([]Result, 0, len(commands))
	for i, command := range commands {
		result, err := r.Run(ctx, command, env...)
		results = append(results, result)
		if err != nil {
			return results, errors.Wrapf(err, errors.GetErrorCode(err), "hook %d of %d failed", i+1, len(commands)).
				WithDetails(errors.GetErrorDetails(err)).
				WithDetail("index", i).
				WithDetail("command", command)
		}
	}
	return results, nil
}

// Run executes a single command line
func (r *Runner) Run(ctx context.Context, command string, env ...string) (Result, error) {
	result := Result{Command: command}

	words, err := splitWords(command)
	if err != nil {
		return result, err
	}
	if len(words) == 0 {
		r.logger.Debug().Str("command", command).Msg("Skipping empty hook command")
		result.Skipped = true
		return result, nil
	}
	result.Args = words[1:]

	if r.dryRun {
		r.logger.Info().Str("command", words[0]).Strs("args", words[1:]).Msg("Would run hook")
		result.Planned = true
		return result, nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logging.LogCommand(r.logger, words[0], words[1:])

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = r.workDir
	cmd.Env = append(append(os.Environ(), r.env...), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		r.logger.Error().Err(err).Str("command", command).Msg("Hook could not be started")
		return result, errors.Wrapf(err, errors.ErrCommandNotStarted, "cannot start %s", words[0]).
			WithDetail("command", command)
	}

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		msg := fmt.Sprintf("%s exited with status %d", words[0], exitCode)
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			msg = fmt.Sprintf("%s timed out after %s", words[0], r.timeout)
		}

		r.logger.Error().
			Err(err).
			Str("command", command).
			Int("exit_code", exitCode).
			Str("stderr", stderr.String()).
			Msg("Hook failed")

		result.Output = stdout.String()
		return result, errors.Wrap(err, errors.ErrCommandFailed, msg).
			WithDetail("command", command).
			WithDetail("exit_code", exitCode).
			WithDetail("stderr", stderr.String())
	}

	if !utf8.Valid(stdout.Bytes()) {
		return result, errors.Newf(errors.ErrUndecodableOutput, "output of %s is not valid UTF-8", words[0]).
			WithDetail("command", command).
			WithDetail("bytes", stdout.Len())
	}

	result.Output = stdout.String()
	r.logger.Info().Str("command", command).Str("output", result.Output).Msg("Hook succeeded")
	if r.stdout != nil && result.Output != "" {
		_, _ = io.WriteString(r.stdout, result.Output)
	}
	return result, nil
}

// splitWords splits a command line into words. Unquoted shell operators
// (; & | < >) are kept as literal characters: go-shellwords would otherwise
// stop at the first one and silently drop the rest of the line.
func splitWords(command string) ([]string, error) {
	parser := shellwords.NewParser()
	words, err := parser.Parse(escapeOperators(command))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandNotStarted, "cannot split command line %q", command).
			WithDetail("command", command)
	}
	if parser.Position != -1 {
		return nil, errors.Newf(errors.ErrCommandNotStarted,
			"shell operator at position %d of %q; wrap the command in sh -c", parser.Position, command).
			WithDetail("command", command).
			WithDetail("position", parser.Position)
	}
	return words, nil
}

// escapeOperators backslash-escapes every operator character outside
// quotes. Quoted and already escaped characters are left alone.
func escapeOperators(command string) string {
	var b strings.Builder
	b.Grow(len(command))

	var escaped, singleQuoted, doubleQuoted bool
	for _, r := range command {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !singleQuoted:
			escaped = true
		case r == '\'' && !doubleQuoted:
			singleQuoted = !singleQuoted
		case r == '"' && !singleQuoted:
			doubleQuoted = !doubleQuoted
		case strings.ContainsRune(";&|<>", r) && !singleQuoted && !doubleQuoted:
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LoadEnvFile reads a dotenv file into sorted KEY=VALUE pairs
func LoadEnvFile(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read env file %s", path).
			WithDetail("path", path)
	}

	env := make([]string, 0, len(values))
	for k, v := range values {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env, nil
}
