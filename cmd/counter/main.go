package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/weegigs/wee-counter-go/connectors/wehttp"
	"github.com/weegigs/wee-counter-go/connectors/weterm"
	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/support"
)

const usage = "usage: counter [term|serve]"

func serve(ctx context.Context, app *Application) error {
	handler := wehttp.NewHandler[counter.Counter](
		app.Program,
		counter.View,
		counter.Title,
		wehttp.Logger[counter.Counter](app.Logger),
		wehttp.Settings[counter.Counter](app.Settings),
	)

	server := &http.Server{Addr: app.Config.Listen, Handler: withLogging(handler)}
	go func() {
		<-ctx.Done()
		if err := server.Close(); err != nil {
			app.Logger.Info().Err(err).Msg("server failed to close cleanly")
		}
	}()

	app.Logger.Info().Str("listen", app.Config.Listen).Msg("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func term(ctx context.Context, app *Application) error {
	host := weterm.NewHost[counter.Counter](
		app.Program,
		counter.View,
		counter.Title,
		os.Stdin,
		os.Stdout,
		weterm.Logger[counter.Counter](app.Logger),
	)

	return host.Run(ctx)
}

func run(args []string) error {
	mode := "term"
	if len(args) > 0 {
		mode = args[0]
	}

	var start func(ctx context.Context, app *Application) error
	switch mode {
	case "term":
		start = term
	case "serve":
		start = serve
	default:
		return errors.Errorf("unknown mode %q\n%s", mode, usage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := live(ctx, support.Environment(os.Environ()))
	if err != nil {
		return errors.Wrap(err, "failed to configure application")
	}
	defer cleanup()

	return start(ctx, app)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
