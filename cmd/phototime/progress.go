package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// consumeProgress drains the run's progress stream. On a terminal it renders
// an interactive bar; otherwise the stream is drained silently and progress is
// visible through the structured log instead.
func consumeProgress(out io.Writer, progress <-chan float64, disabled bool) {
	if disabled || !isatty.IsTerminal(os.Stdout.Fd()) {
		for range progress {
		}
		return
	}
	renderBar(out, progress)
}

// renderBar completes the bar only when the stream delivered the terminal
// 1.0; a stream that closes early signals a batch error, and the partial bar
// is cleared so it cannot misread as a finished run.
func renderBar(out io.Writer, progress <-chan float64) {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("matching"),
		progressbar.OptionShowCount(),
	)

	last := 0.0
	for fraction := range progress {
		last = fraction
		_ = bar.Set(int(fraction * 100))
	}

	if last >= 1.0 {
		_ = bar.Finish()
	} else {
		_ = bar.Clear()
	}
	fmt.Fprintln(out)
}
