// Package export renders a complete waveform figure to a file.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/violationbit/internal/plotting"
	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/waveform"
)

var ErrUnsupportedFormat = errors.New("export: unsupported format")

const (
	DefaultWidth  = 1024
	DefaultHeight = 600
)

// Formats lists the file extensions Write understands.
var Formats = []string{".png", ".jpg", ".jpeg", ".pdf", ".svg", ".json", ".csv"}

// Write renders fig with trace tr to path, choosing the format from the
// file extension.
func Write(path string, fig visualizer.Figure, tr *waveform.Trace) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".pdf":
		p, err := plotting.New(fig, tr)
		if err != nil {
			return err
		}
		w := vg.Points(DefaultWidth * 0.75)
		h := vg.Points(DefaultHeight * 0.75)
		return p.Save(w, h, path)
	case ".svg":
		return writeFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, WaveformToSVG(fig, tr, DefaultWidth, DefaultHeight))
			return err
		})
	case ".json":
		return writeFile(path, func(w io.Writer) error { return WriteJSON(w, fig, tr) })
	case ".csv":
		return writeFile(path, func(w io.Writer) error { return WriteCSV(w, tr) })
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, ext, strings.Join(Formats, " "))
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := file.Close(); e != nil {
			err = multierror.Append(err, e).ErrorOrNil()
		}
	}()
	return fn(file)
}
