package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/logrusorgru/aurora"
)

// TerminalSink draws Frames in a terminal, redrawing the same lines
// for each Frame. Each pixel is drawn as two spaces with a 256 colour
// background.
type TerminalSink struct {
	writer *uilive.Writer
	au     aurora.Aurora
}

// NewTerminalSink returns a TerminalSink writing to out. If colors is
// false, ANSI colour sequences are not written.
func NewTerminalSink(out io.Writer, colors bool) *TerminalSink {
	writer := uilive.New()
	writer.Out = out
	return &TerminalSink{writer: writer, au: aurora.NewAurora(colors)}
}

// Show implements the Sink interface
func (t *TerminalSink) Show(f Frame) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%v | epoch %v\n", f.Name, f.Epoch)
	for y := 0; y < f.Image.Height; y++ {
		for x := 0; x < f.Image.Width; x++ {
			b.WriteString(t.au.BgIndex(ansi256(f.Image.At(x, y)), "  ").String())
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(t.writer, b.String()); err != nil {
		return fmt.Errorf("show: %v", err)
	}
	return t.writer.Flush()
}

// ansi256 returns the closest colour of the 6x6x6 ANSI colour cube
func ansi256(r, g, b uint8) uint8 {
	level := func(c uint8) uint8 {
		return uint8((int(c)*5 + 127) / 255)
	}
	return 16 + 36*level(r) + 6*level(g) + level(b)
}
