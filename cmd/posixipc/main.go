package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/desertwitch/posixipc/internal/configuration"
	"github.com/desertwitch/posixipc/internal/fifo"
	"github.com/desertwitch/posixipc/internal/schema"
	"github.com/desertwitch/posixipc/internal/semaphore"
	"github.com/desertwitch/posixipc/internal/timing"
	"github.com/lmittmann/tint"
)

const (
	stackTraceBufMax = 1 << 24

	exitFailure = 1
	exitUsage   = 2
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile = flag.String("config", "", "read command defaults from this env file")
	debug      = flag.Bool("debug", false, "enable debug logging")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// setupSignalHandlers cancels the context on SIGTERM and SIGINT, leaving the
// cleanup to main. SIGUSR1 dumps all goroutine stacks, which helps with
// finding out what a process blocked on a FIFO or semaphore is waiting for.
func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "posixipc %s\n\nUsage: %s [flags] <command> [args]\n\nCommands:\n", Version, os.Args[0])
	for _, cmd := range commands {
		fmt.Fprintf(flag.CommandLine.Output(), "  %-12s %s\n", cmd.name, cmd.help)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Usage = usage
	flag.Parse()

	if *debug {
		setupLogging(slog.LevelDebug)
	} else {
		setupLogging(slog.LevelInfo)
	}
	setupSignalHandlers(cancel)

	if *cpuprofile != "" {
		stopProfile, err := startCPUProfile(*cpuprofile)
		if err != nil {
			slog.Error("Could not start cpu profile.",
				"file", *cpuprofile,
				"err", err,
			)
		} else {
			defer stopProfile()
		}
	}

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	app := NewApp(
		configuration.NewHandler(configProvider),
		fifo.NewHandler(osProvider, unixProvider),
		semaphore.NewHandler(unixProvider),
		timing.NewHandler(unixProvider),
		os.Stdout,
	)

	if *configFile != "" {
		if err := app.LoadConfig(*configFile); err != nil {
			slog.Error("Failed to read configuration.",
				"file", *configFile,
				"err", err,
			)
			ExitCode = exitFailure

			return
		}
	}

	if err := runUntilDone(ctx, app, flag.Args()); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			if !errors.Is(err, flag.ErrHelp) {
				slog.Error("Invalid usage.", "err", err)
			}
			flag.Usage()
			ExitCode = exitUsage

			return
		}

		if errors.Is(err, context.Canceled) {
			slog.Warn("Interrupted, exiting.")
			ExitCode = exitFailure

			return
		}

		slog.Error("Command failed.",
			"err", err,
		)
		ExitCode = exitFailure
	}
}

// runUntilDone runs the command, returning early when ctx is cancelled. A
// command cut short has any semaphore it holds released, while the command
// itself is abandoned; a process blocked in a syscall cannot be unblocked.
func runUntilDone(ctx context.Context, app *App, args []string) error {
	done := make(chan error, 1)

	go func() {
		done <- app.Run(args)
	}()

	select {
	case err := <-done:
		return err

	case <-ctx.Done():
		app.Abort()

		return ctx.Err()
	}
}
