// Package sync triggers the external device-export script. The script owns
// the actual download and database writes; this package only runs it and
// relays its output.
package sync

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrNoScript is returned when no sync script is configured.
var ErrNoScript = errors.New("no sync script configured")

// ErrScriptMissing is returned when the configured script does not exist.
var ErrScriptMissing = errors.New("sync script not found")

// Runner executes the configured export script.
type Runner struct {
	Script string
}

// NewRunner creates a Runner for the given script path.
func NewRunner(script string) *Runner {
	return &Runner{Script: script}
}

// Run executes the script, invoking onLine for every line of combined
// output as it arrives. Returns once the script exits; a non-zero exit is
// an error. onLine may be nil.
func (r *Runner) Run(ctx context.Context, onLine func(string)) error {
	if r.Script == "" {
		return ErrNoScript
	}
	if _, err := os.Stat(r.Script); err != nil {
		return fmt.Errorf("%w: %s", ErrScriptMissing, r.Script)
	}

	cmd := exec.CommandContext(ctx, r.Script)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return fmt.Errorf("starting sync script: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
	}()

	err := cmd.Wait()
	pw.Close()
	<-done

	if err != nil {
		return fmt.Errorf("sync script failed: %w", err)
	}
	return nil
}
