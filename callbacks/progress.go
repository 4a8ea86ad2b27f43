package callbacks

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Progress renders a terminal progress bar for each epoch, driven entirely by
// the lifecycle hooks. It needs the run shape up front because hooks only
// carry indices, not totals.
type Progress struct {
	Base

	out             io.Writer
	epochs          int
	batchesPerEpoch int
	width           int

	epochStart time.Time
	done       int
}

// NewProgress creates a progress bar for a run of `epochs` epochs with
// `batchesPerEpoch` batches each, writing to stdout.
func NewProgress(epochs, batchesPerEpoch int) *Progress {
	return &Progress{
		out:             os.Stdout,
		epochs:          epochs,
		batchesPerEpoch: batchesPerEpoch,
		width:           40,
	}
}

// WithWriter redirects the bar, e.g. to a buffer in tests.
func (p *Progress) WithWriter(out io.Writer) *Progress {
	if out != nil {
		p.out = out
	}
	return p
}

func (p *Progress) OnEpochStart(_ State, epoch int) {
	p.epochStart = time.Now()
	p.done = 0
	p.render(epoch)
}

func (p *Progress) OnBatchEnd(_ State, epoch, _ int) {
	p.done++
	p.render(epoch)
}

func (p *Progress) OnEpochEnd(_ State, epoch int) {
	p.done = p.batchesPerEpoch
	p.render(epoch)
	fmt.Fprintln(p.out)
}

func (p *Progress) render(epoch int) {
	total := p.batchesPerEpoch
	if total < 1 {
		total = 1
	}
	frac := float64(p.done) / float64(total)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(p.width))

	elapsed := time.Since(p.epochStart)
	var eta time.Duration
	if frac > 0 && frac < 1 {
		eta = time.Duration(float64(elapsed)/frac) - elapsed
	}

	fmt.Fprintf(p.out, "\rEpoch %d/%d %3.0f%%|%s%s| %d/%d [%s<%s]",
		epoch, p.epochs,
		frac*100,
		strings.Repeat("█", filled),
		strings.Repeat(" ", p.width-filled),
		p.done, total,
		formatDuration(elapsed), formatDuration(eta),
	)
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
