// Package opener hands a URL or payment link to something outside the process:
// the system browser, the clipboard, or a writer for dry runs.
package opener

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Opener delivers target to the user.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// Func adapts a function to Opener.
type Func func(ctx context.Context, target string) error

// Open implements Opener.
func (f Func) Open(ctx context.Context, target string) error {
	return f(ctx, target)
}

// browserCommand is swapped in tests.
var browserCommand = func(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Browser opens target with the platform URL handler.
type Browser struct{}

// Open implements Opener.
func (Browser) Open(ctx context.Context, target string) error {
	name, args := browserCommand(runtime.GOOS, target)
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open %q with %s: %w (%s)", target, name, err, out)
	}
	return nil
}

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// Clipboard copies target to the system clipboard.
type Clipboard struct{}

// Open implements Opener.
func (Clipboard) Open(_ context.Context, target string) error {
	if err := clipboardWrite(target); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Writer prints target on its own line. Used for --dry-run and --no-tui.
type Writer struct {
	W io.Writer
}

// Open implements Opener.
func (w Writer) Open(_ context.Context, target string) error {
	_, err := fmt.Fprintln(w.W, target)
	return err
}

// ByName returns the opener for a config value: "browser", "clipboard" or "stdout".
func ByName(name string, stdout io.Writer) (Opener, error) {
	switch name {
	case "", "browser":
		return Browser{}, nil
	case "clipboard":
		return Clipboard{}, nil
	case "stdout":
		return Writer{W: stdout}, nil
	default:
		return nil, fmt.Errorf("unknown opener %q (want browser, clipboard or stdout)", name)
	}
}
