// Package weterm drives a program from a line based terminal. A line holding
// a button label presses that button, "> text" replaces the text of the
// first input, "q" quits and an empty line repaints.
package weterm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/view"
	"github.com/weegigs/wee-counter-go/we"
)

const quit = "q"

type HostOption[S any] func(host *Host[S])

func Logger[S any](log *zerolog.Logger) HostOption[S] {
	return func(host *Host[S]) {
		host.log = log
	}
}

func NewHost[S any](program we.Program[S], render view.Render[S], title string, in io.Reader, out io.Writer, options ...HostOption[S]) *Host[S] {
	host := &Host[S]{
		program: program,
		render:  render,
		title:   title,
		in:      in,
		out:     out,
	}

	for _, option := range options {
		option(host)
	}

	if host.log == nil {
		host.log = &log.Logger
	}

	return host
}

type Host[S any] struct {
	program we.Program[S]
	render  view.Render[S]
	title   string
	in      io.Reader
	out     io.Writer
	log     *zerolog.Logger
}

// Run paints, then handles input lines until "q", end of input or ctx is
// done.
func (h *Host[S]) Run(ctx context.Context) error {
	entity, err := h.program.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load state")
	}

	current := h.render(*entity.State)
	if err := Paint(h.out, h.title, current); err != nil {
		return err
	}

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == quit {
			return nil
		}

		if line != "" {
			message, err := h.message(current, scanner.Text())
			if err != nil {
				h.report(err)
				continue
			}

			entity, err = h.program.Dispatch(ctx, message)
			if err != nil {
				h.log.Info().Err(err).Str("input", line).Msg("failed to dispatch message")
				h.report(err)
				continue
			}

			current = h.render(*entity.State)
		}

		if err := Paint(h.out, h.title, current); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (h *Host[S]) message(current view.Node, raw string) (we.Message, error) {
	line := strings.TrimSpace(raw)

	if strings.HasPrefix(line, ">") {
		text := strings.TrimPrefix(strings.TrimLeft(raw, " \t"), ">")
		text = strings.TrimPrefix(text, " ")

		for _, node := range view.Interactive(current) {
			if node.Kind == view.KindTextInput {
				return node.Change(text)
			}
		}

		return nil, errors.New("nothing accepts text input")
	}

	for _, node := range view.Interactive(current) {
		if node.Kind == view.KindButton && node.Content == line {
			return node.Pressed()
		}
	}

	return nil, errors.Errorf("no button labelled %q", line)
}

func (h *Host[S]) report(err error) {
	if _, werr := fmt.Fprintf(h.out, "! %v\n", err); werr != nil {
		h.log.Debug().Err(werr).Msg("failed to report error")
	}
}
