// Package console renders a narration event stream to a terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/laststand/internal/game/event"
)

// Options configures a Presenter.
type Options struct {
	// PauseUnit is the wall-clock length of one pause unit. Zero disables waiting.
	PauseUnit time.Duration
	// Height is the number of most recent lines kept on screen.
	Height int
	// Color enables ANSI redraws with dimmed status lines.
	Color bool
}

// Presenter paces events and shows a scrolling window of narration.
// It reads events and never mutates them.
type Presenter struct {
	out    io.Writer
	opts   Options
	logger *zap.Logger
	window []event.Event
}

// NewPresenter creates a Presenter writing to out.
//
// Precondition: out and logger must be non-nil; opts.Height must be > 0.
func NewPresenter(out io.Writer, opts Options, logger *zap.Logger) *Presenter {
	if opts.Height < 1 {
		opts.Height = 1
	}
	return &Presenter{out: out, opts: opts, logger: logger}
}

// Present walks events in order. A pause event delays the next event by
// n pause units; a text event enters the window.
//
// Postcondition: Returns ctx.Err() if cancelled before the last event was shown.
func (p *Presenter) Present(ctx context.Context, events []event.Event) error {
	shown := 0
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			p.logger.Info("presentation cancelled", zap.Int("shown", shown), zap.Int("total", len(events)))
			return err
		}
		if units, ok := e.Pause(); ok {
			if err := p.wait(ctx, units); err != nil {
				p.logger.Info("presentation cancelled", zap.Int("shown", shown), zap.Int("total", len(events)))
				return err
			}
			continue
		}
		if err := p.show(e); err != nil {
			return fmt.Errorf("writing event %d: %w", shown, err)
		}
		shown++
	}
	p.logger.Debug("presentation complete", zap.Int("shown", shown))
	return nil
}

// Window returns the lines currently on screen, oldest first.
func (p *Presenter) Window() []string {
	lines := make([]string, len(p.window))
	for i, e := range p.window {
		lines[i] = e.Text()
	}
	return lines
}

func (p *Presenter) wait(ctx context.Context, units int) error {
	d := time.Duration(units) * p.opts.PauseUnit
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Presenter) show(e event.Event) error {
	p.window = append(p.window, e)
	if over := len(p.window) - p.opts.Height; over > 0 {
		p.window = append(p.window[:0:0], p.window[over:]...)
	}
	if !p.opts.Color {
		_, err := fmt.Fprintln(p.out, e.Text())
		return err
	}
	var b strings.Builder
	b.WriteString(ClearScreen)
	for _, w := range p.window {
		b.WriteString(render(w))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func render(e event.Event) string {
	if e.Style() == event.StyleStatus {
		return Colorize(BrightBlack, e.Text())
	}
	return e.Text()
}

// Service adapts a Presenter and a fixed event list into a lifecycle service.
type Service struct {
	presenter *Presenter
	events    []event.Event
}

// NewService binds events to presenter.
func NewService(presenter *Presenter, events []event.Event) *Service {
	return &Service{presenter: presenter, events: events}
}

// Run presents every event, stopping early when ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	return s.presenter.Present(ctx, s.events)
}
