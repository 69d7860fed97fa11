package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/desertwitch/posixipc/internal/configuration"
	"github.com/desertwitch/posixipc/internal/logwriter"
	"github.com/desertwitch/posixipc/internal/numeric"
	"github.com/desertwitch/posixipc/internal/timing"
	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

const defaultFifoFlags = "rdwr"

type command struct {
	name string
	help string
	run  func(app *App, args []string) error
}

//nolint:gochecknoglobals
var commands = []command{
	{name: "parse", help: "<text>: print the integer value of text", run: cmdParse},
	{name: "wait", help: "[-ticks N]: busy-wait N ticks of cpu time", run: cmdWait},
	{name: "fifo-create", help: "[-path P] [-flags F]: create and open a FIFO, leaving it in place", run: cmdFifoCreate},
	{name: "fifo-unlink", help: "[-path P]: remove a FIFO", run: cmdFifoUnlink},
	{name: "sem-init", help: "[-name N]: create or open a named semaphore", run: cmdSemInit},
	{name: "sem-destroy", help: "[-name N]: open, close and remove an existing named semaphore", run: cmdSemDestroy},
	{name: "sem-run", help: "[-name N] [-ticks T]: hold a named semaphore while busy-waiting", run: cmdSemRun},
	{name: "log", help: "<message>: write message verbatim to stdout", run: cmdLog},
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	return nil
}

func singleArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: expected exactly one argument, got %d", errUsage, fs.NArg())
	}

	return fs.Arg(0), nil
}

func cmdParse(app *App, args []string) error {
	fs := newFlagSet("parse")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	text, err := singleArg(fs)
	if err != nil {
		return err
	}

	num, err := numeric.Parse(text)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Parsed number.", "value", humanize.Comma(int64(num)))
	fmt.Fprintln(app.stdout, num)

	return nil
}

func cmdWait(app *App, args []string) error {
	fs := newFlagSet("wait")
	fs.Int64("ticks", 0, "cpu-time ticks to busy-wait")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ticks, err := app.resolveTicks(fs, "ticks", configuration.EnvWaitTicks)
	if err != nil {
		return err
	}

	return app.busyWait(ticks)
}

func cmdFifoCreate(app *App, args []string) error {
	fs := newFlagSet("fifo-create")
	path := fs.String("path", app.defaultString(configuration.EnvFifoPath, ""), "path of the FIFO")
	flagSpec := fs.String("flags", app.defaultString(configuration.EnvFifoFlags, defaultFifoFlags), "open flags (rdonly|wronly|rdwr[,nonblock])")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("%w: no FIFO path given", errUsage)
	}

	flags, err := parseOpenFlags(*flagSpec)
	if err != nil {
		return err
	}

	f, err := app.fifoHandler.Open(*path, flags)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err := f.Close(); err != nil {
		slog.Warn("Failed to close FIFO descriptor.",
			"path", *path,
			"err", err,
		)
	}

	slog.Info("Created FIFO.", "path", *path)

	return nil
}

func cmdFifoUnlink(app *App, args []string) error {
	fs := newFlagSet("fifo-unlink")
	path := fs.String("path", app.defaultString(configuration.EnvFifoPath, ""), "path of the FIFO")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("%w: no FIFO path given", errUsage)
	}

	if err := app.fifoHandler.Unlink(*path); err != nil {
		return err //nolint:wrapcheck
	}

	slog.Info("Removed FIFO.", "path", *path)

	return nil
}

func cmdSemInit(app *App, args []string) error {
	fs := newFlagSet("sem-init")
	name := fs.String("name", app.defaultString(configuration.EnvSemaphoreName, defaultSemaphoreName()), "name of the semaphore")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	sem, err := app.semHandler.Init(*name)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer closeSemaphore(sem)

	value, err := sem.Value()
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Info("Initialized named semaphore.", "name", *name, "value", value)

	return nil
}

func cmdSemDestroy(app *App, args []string) error {
	fs := newFlagSet("sem-destroy")
	name := fs.String("name", app.defaultString(configuration.EnvSemaphoreName, defaultSemaphoreName()), "name of the semaphore")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	sem, err := app.semHandler.Open(*name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err := app.semHandler.Destroy(sem, *name); err != nil {
		return err //nolint:wrapcheck
	}

	slog.Info("Destroyed named semaphore.", "name", *name)

	return nil
}

func cmdSemRun(app *App, args []string) error {
	fs := newFlagSet("sem-run")
	name := fs.String("name", app.defaultString(configuration.EnvSemaphoreName, defaultSemaphoreName()), "name of the semaphore")
	fs.Int64("ticks", 0, "cpu-time ticks to hold the semaphore for")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ticks, err := app.resolveTicks(fs, "ticks", configuration.EnvWaitTicks)
	if err != nil {
		return err
	}

	sem, err := app.semHandler.Init(*name)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer closeSemaphore(sem)

	slog.Debug("Waiting for named semaphore.", "name", *name)

	if err := sem.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	app.hold(sem)

	waitErr := app.busyWait(ticks)

	if err := app.release(); err != nil {
		return err
	}

	slog.Debug("Released named semaphore.", "name", *name)

	return waitErr
}

func cmdLog(app *App, args []string) error {
	fs := newFlagSet("log")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	message, err := singleArg(fs)
	if err != nil {
		return err
	}

	n, err := logwriter.Log(app.stdout, message)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Wrote message.", "size", humanize.Bytes(uint64(n)))

	return nil
}

// busyWait busy-waits the given ticks and logs the consumed cpu time.
func (app *App) busyWait(ticks timing.Ticks) error {
	start, err := app.timingHandler.Now()
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err := app.timingHandler.BusyWait(ticks); err != nil {
		return err //nolint:wrapcheck
	}

	end, err := app.timingHandler.Now()
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Info("Busy-wait completed.",
		"ticks", humanize.Comma(int64(ticks)),
		"cpuTime", (end - start).Duration(),
	)

	return nil
}

// parseOpenFlags converts a comma-separated list of an access mode (rdonly,
// wronly or rdwr) and optional modifiers (nonblock) into open flags.
func parseOpenFlags(spec string) (int, error) {
	var flags int
	var modes int

	for _, part := range strings.Split(spec, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "rdonly":
			flags |= os.O_RDONLY
			modes++
		case "wronly":
			flags |= os.O_WRONLY
			modes++
		case "rdwr":
			flags |= os.O_RDWR
			modes++
		case "nonblock":
			flags |= unix.O_NONBLOCK
		default:
			return 0, fmt.Errorf("%w: unknown open flag %q", errUsage, part)
		}
	}

	if modes != 1 {
		return 0, fmt.Errorf("%w: exactly one access mode required in %q", errUsage, spec)
	}

	return flags, nil
}
