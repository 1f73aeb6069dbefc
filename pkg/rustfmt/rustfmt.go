// Package rustfmt pipes formatted output through an external rustfmt
// process. The engine writes a finished text block into the sink and never
// inspects what rustfmt does with it.
package rustfmt

import (
	"io"
	"os"
	"os/exec"

	pkgerrors "github.com/pkg/errors"

	"github.com/tidyuse/tidyuse/pkg/errors"
)

// Options configure the external formatter pass.
type Options struct {
	Skip    bool     // write straight to the destination
	Path    string   // rustfmt binary, "rustfmt" when empty
	Edition string   // forwarded as --edition when set
	Args    []string // extra arguments forwarded verbatim
}

// Pipe returns a sink for the engine's output. With Skip set it passes
// bytes straight through; otherwise it spawns rustfmt with its stdout
// connected to dst. Close must be called to release the process; a
// non-zero exit status is reported as an error.
func Pipe(opts Options, dst io.Writer) (io.WriteCloser, error) {
	if opts.Skip {
		return nopCloser{dst}, nil
	}

	path := opts.Path
	if path == "" {
		path = "rustfmt"
	}
	var args []string
	if opts.Edition != "" {
		args = append(args, "--edition", opts.Edition)
	}
	args = append(args, opts.Args...)

	cmd := exec.Command(path, args...)
	cmd.Stdout = dst
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "opening rustfmt stdin")
	}
	if err := cmd.Start(); err != nil {
		return nil, pkgerrors.Wrapf(err, "starting %s", path)
	}
	return &pipe{cmd: cmd, stdin: stdin}, nil
}

type pipe struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func (p *pipe) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

func (p *pipe) Close() error {
	if err := p.stdin.Close(); err != nil {
		return pkgerrors.Wrap(err, "closing rustfmt stdin")
	}
	if err := p.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if pkgerrors.As(err, &exitErr) {
			return pkgerrors.Errorf("%s: exit status %d", errors.ErrMsgRustfmtFailed, exitErr.ExitCode())
		}
		return pkgerrors.Wrap(err, errors.ErrMsgRustfmtFailed)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
