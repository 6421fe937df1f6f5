// Package pager launches the optional output pager (spec.md's "fork + pipe"
// step) and traps the signal set GNU diff must handle so a pager child is
// always reaped and any temporary file unlinked on abnormal exit. Grounded
// on the teacher's pkg/zeta/pager.go NewPrinter, adapted from an interactive
// "less"-style pager (stdout-attached, color-aware) to diff's simpler
// pr-by-default, non-interactive one: a pipe to a single child process that
// is waited on once, with no terminal-level feature detection.
package pager

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// Pager is a started pager child process (or a no-op passthrough to stdout
// when paging is disabled or unavailable).
type Pager struct {
	w       *os.File
	cmd     *exec.Cmd
	stdin   *os.File
	closeFn func() error
}

// Writer returns the stream formatters should write to.
func (p *Pager) Writer() *os.File {
	if p.stdin != nil {
		return p.stdin
	}
	return p.w
}

// Close waits for the pager child to drain and exit. Safe to call on a
// no-op Pager.
func (p *Pager) Close() error {
	if p.closeFn == nil {
		return nil
	}
	return p.closeFn()
}

// lookupPagerCommand resolves the PR_PAGER/PAGER override chain, falling
// back to "pr" the way spec.md's pagination step describes.
func lookupPagerCommand() (string, bool) {
	if v, ok := os.LookupEnv("PR_PAGER"); ok {
		return v, ok
	}
	if v, ok := os.LookupEnv("PAGER"); ok {
		return v, ok
	}
	return "pr", true
}

// Launch starts the pager when paging is enabled and a pager command
// resolves; otherwise, or if the pager cannot be started, it returns a
// Pager that writes straight to stdout. It does not check whether stdout
// is a terminal. The caller must call Close once output is complete.
func Launch(ctx context.Context, enabled bool) *Pager {
	if !enabled {
		return &Pager{w: os.Stdout}
	}
	name, ok := lookupPagerCommand()
	if !ok || name == "" {
		return &Pager{w: os.Stdout}
	}
	cmd := exec.CommandContext(ctx, name)
	pr, pw, err := os.Pipe()
	if err != nil {
		return &Pager{w: os.Stdout}
	}
	cmd.Stdin = pr
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return &Pager{w: os.Stdout}
	}
	_ = pr.Close()
	p := &Pager{cmd: cmd, stdin: pw}
	p.closeFn = func() error {
		_ = pw.Close()
		return cmd.Wait()
	}
	return p
}

// TrapSignals installs handlers for the signal set spec.md requires diff to
// trap (HUP, INT, TERM, PIPE, plus the resource-limit signals XCPU/XFSZ,
// which the standard syscall package does not expose as portable named
// constants the way golang.org/x/sys/unix does). Handlers are flag-only:
// they record that a signal arrived and run cleanup, then re-raise the
// signal with its default disposition so the process exits with the
// conventional signal-based status, per spec.md's testable property 6.
//
// cleanup is invoked at most once, synchronously, on the first trapped
// signal; it should be limited to reaping the pager child and unlinking
// temporaries, the only actions spec.md calls "async-signal-safe" here.
func TrapSignals(cleanup func()) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGPIPE,
		unix.SIGXCPU,
		unix.SIGXFSZ,
	)

	var once sync.Once
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigs:
			once.Do(cleanup)
			signal.Reset(sig.(syscall.Signal))
			_ = syscall.Kill(os.Getpid(), sig.(syscall.Signal))
		case <-done:
		}
	}()

	return func() {
		close(done)
		signal.Stop(sigs)
	}
}
