package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// SpinnerProgressReporter shows deployment and generation progress with a
// spinner and a trail of completed stages
type SpinnerProgressReporter struct {
	spinner        *spinner.Spinner
	out            io.Writer
	stages         []stageInfo
	currentStage   string
	stageStartTime time.Time
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     os.Stderr,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		if event.Stage != "" && event.Stage != usecase.StageDone {
			r.currentStage = event.Stage
			r.stageStartTime = time.Now()
			r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: r.stageStartTime})
		}
	}

	if len(r.stages) > 0 && event.Message != "" {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.suffix(event.Message)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

func (r *SpinnerProgressReporter) printPaused(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) completeCurrentStage() {
	if r.currentStage == "" || len(r.stages) == 0 {
		return
	}
	r.stages[len(r.stages)-1].EndTime = time.Now()
	r.currentStage = ""
}

// suffix renders completed stages followed by the running one, e.g.
// "✓ Connecting (120ms) → ● Network (1s) Deploying to Mantle..."
func (r *SpinnerProgressReporter) suffix(message string) string {
	var display string
	for i, stage := range r.stages {
		if i > 0 {
			display += " → "
		}
		if !stage.EndTime.IsZero() {
			display += fmt.Sprintf("✓ %s (%s)",
				color.New(color.FgGreen).Sprint(stage.Stage),
				stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
			continue
		}
		display += fmt.Sprintf("● %s (%s)",
			color.New(color.FgYellow).Sprint(stage.Stage),
			time.Since(stage.StartTime).Round(time.Second))
	}
	if message != "" {
		display += " " + message
	}
	return display
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
