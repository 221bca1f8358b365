package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"travelplanner/internal/form"
	"travelplanner/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("planner", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	place := fs.String("place", "", "destination to plan a trip to")
	days := fs.String("days", "1", "number of days (1-30)")
	server := fs.String("server", "http://localhost:8080", "travel planner server base URL")
	timeout := fs.Duration("timeout", 75*time.Second, "request timeout")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := logger.New(*logLevel, "console")
	if err != nil {
		fmt.Fprintf(stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := form.New(form.NewHTTPClient(*server, *timeout), log.Named("planner"))
	return submit(ctx, f, *place, *days, stdout, stderr, log)
}

func submit(ctx context.Context, f *form.Form, place, days string, stdout, stderr io.Writer, log *zap.Logger) int {
	err := f.Submit(ctx, place, days)

	var fieldErrs form.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(stderr, "%s: %s\n", field, fieldErrs[field])
		}
		return 2
	case err != nil:
		fmt.Fprintln(stderr, f.State().Error)
		return 1
	}

	st := f.State()
	if err := form.WriteText(stdout, form.Render(*st.Result)); err != nil {
		log.Error("failed to write itinerary", zap.Error(err))
		return 1
	}
	return 0
}
