// Package clipboard writes exported text to the system clipboard or a fallback sink.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/csvtally/internal/utils"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer places text on a clipboard-like destination.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// ErrUnknownMode indicates an unsupported clipboard mode.
var ErrUnknownMode = errors.New("unknown clipboard mode")

// Options selects and configures a Writer.
type Options struct {
	// Mode is one of "osc52", "stdout" or "file".
	Mode string
	// Path is the destination for file mode.
	Path string
	// Passthrough wraps OSC 52 for terminal multiplexers: "default", "tmux" or "screen".
	Passthrough string
	// Out overrides the terminal/stdout stream. Defaults to os.Stderr for OSC 52 and
	// os.Stdout for stdout mode.
	Out io.Writer
}

// New builds the Writer for opt.Mode.
func New(opt Options) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(opt.Mode)) {
	case "", "osc52":
		out := opt.Out
		if out == nil {
			out = os.Stderr
		}
		return &OSC52{Out: out, Passthrough: opt.Passthrough}, nil
	case "stdout":
		out := opt.Out
		if out == nil {
			out = os.Stdout
		}
		return &Stream{Out: out}, nil
	case "file":
		if opt.Path == "" {
			return nil, fmt.Errorf("clipboard file mode requires a path")
		}
		return &File{Path: opt.Path}, nil
	default:
		return nil, fmt.Errorf("%w: %s (use osc52|stdout|file)", ErrUnknownMode, opt.Mode)
	}
}

// OSC52 asks the terminal emulator to set the clipboard via an OSC 52 escape sequence.
type OSC52 struct {
	Out         io.Writer
	Passthrough string
}

func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	switch strings.ToLower(o.Passthrough) {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

// Stream prints the text followed by a newline.
type Stream struct {
	Out io.Writer
}

func (s *Stream) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.Out, text+"\n"); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

// File writes the text atomically to Path.
type File struct {
	Path string
}

func (f *File) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return utils.SafeWriteFile(f.Path, []byte(text))
}
