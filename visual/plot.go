// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 12
	// DefaultScale is the amplitude drawn at the top row; ring values start
	// in [-0.5, 0.5).
	DefaultScale = 0.5

	clearScreen = "\x1b[H\x1b[2J"
)

// Plot renders snapshots to W. It is safe to share between synthesis
// goroutines; frames never interleave.
type Plot struct {
	W      io.Writer
	Width  int
	Height int
	Scale  float64
	Clear  bool // home the cursor and clear before each frame

	mu  sync.Mutex
	buf bytes.Buffer
}

// NewTerminalPlot sizes a plot to the terminal behind f. When f is not a
// terminal the plot falls back to DefaultWidth x DefaultHeight and does not
// clear the screen.
func NewTerminalPlot(f *os.File) *Plot {
	p := &Plot{W: f, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return p
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "visual.NewTerminalPlot",
			"error":    err.Error(),
		}).Debug("Terminal size unavailable, using defaults")
		return p
	}

	p.Width = max(w, 8)
	p.Height = max(h-2, 3)
	p.Clear = true

	return p
}

// Observe draws one frame for snapshot, labelled with the step it was taken at.
func (p *Plot) Observe(step int, snapshot []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buf.Reset()
	if p.Clear {
		p.buf.WriteString(clearScreen)
	}
	fmt.Fprintf(&p.buf, "step %d  ring %d\n", step, len(snapshot))
	for _, row := range Render(snapshot, p.width(), p.height(), p.scale()) {
		p.buf.WriteString(row)
		p.buf.WriteByte('\n')
	}

	if _, err := p.W.Write(p.buf.Bytes()); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "visual.Plot.Observe",
			"step":     step,
			"error":    err.Error(),
		}).Debug("Frame dropped")
	}
}

func (p *Plot) width() int {
	if p.Width > 0 {
		return p.Width
	}
	return DefaultWidth
}

func (p *Plot) height() int {
	if p.Height > 0 {
		return p.Height
	}
	return DefaultHeight
}

func (p *Plot) scale() float64 {
	if p.Scale > 0 {
		return p.Scale
	}
	return DefaultScale
}

// Render maps values onto a width x height character grid. Each column
// shows the value at the proportional index; values beyond +-scale are
// pinned to the top or bottom row. The middle row carries the zero axis.
func Render(values []float64, width, height int, scale float64) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	grid := make([][]byte, height)
	mid := (height - 1) / 2
	for r := range grid {
		fill := byte(' ')
		if r == mid {
			fill = '-'
		}
		grid[r] = bytes.Repeat([]byte{fill}, width)
	}

	if len(values) > 0 && scale > 0 {
		for c := range width {
			v := values[c*len(values)/width]
			if math.IsNaN(v) {
				continue
			}

			norm := max(-1, min(1, v/scale))
			row := int(math.Round((1 - norm) / 2 * float64(height-1)))
			grid[row][c] = '*'
		}
	}

	rows := make([]string, height)
	for r, line := range grid {
		rows[r] = string(line)
	}
	return rows
}
