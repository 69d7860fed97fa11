package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/desertwitch/posixipc/internal/configuration"
	"github.com/desertwitch/posixipc/internal/fifo"
	"github.com/desertwitch/posixipc/internal/semaphore"
	"github.com/desertwitch/posixipc/internal/timing"
)

// App holds the handlers the commands operate with.
type App struct {
	configHandler *configuration.Handler
	fifoHandler   *fifo.Handler
	semHandler    *semaphore.Handler
	timingHandler *timing.Handler
	envMap        map[string]string
	stdout        io.Writer
	heldLock      sync.Mutex
	held          *semaphore.Semaphore
}

// NewApp returns a pointer to a new [App].
func NewApp(configHandler *configuration.Handler,
	fifoHandler *fifo.Handler,
	semHandler *semaphore.Handler,
	timingHandler *timing.Handler,
	stdout io.Writer,
) *App {
	return &App{
		configHandler: configHandler,
		fifoHandler:   fifoHandler,
		semHandler:    semHandler,
		timingHandler: timingHandler,
		envMap:        make(map[string]string),
		stdout:        stdout,
	}
}

// LoadConfig reads the command defaults from an env file.
func (app *App) LoadConfig(filename string) error {
	envMap, err := app.configHandler.Read(filename)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}
	app.envMap = envMap

	return nil
}

// Run executes the command named by the first argument.
func (app *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}

	for _, cmd := range commands {
		if cmd.name == args[0] {
			if err := cmd.run(app, args[1:]); err != nil {
				return fmt.Errorf("(%s) %w", cmd.name, err)
			}

			return nil
		}
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// defaultString returns the configured value for key, or fallback.
func (app *App) defaultString(key string, fallback string) string {
	if value := app.configHandler.MapKeyToString(app.envMap, key); value != "" {
		return value
	}

	return fallback
}

// resolveTicks returns the value of the named ticks flag if it was given on
// the command line, otherwise the configured value for key, otherwise 0. The
// configuration is only consulted when the flag is absent.
func (app *App) resolveTicks(fs *flag.FlagSet, name string, key string) (timing.Ticks, error) {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})

	if given {
		ticks, ok := fs.Lookup(name).Value.(flag.Getter).Get().(int64)
		if !ok {
			return 0, fmt.Errorf("%w: flag -%s is not an integer", errUsage, name)
		}

		return timing.Ticks(ticks), nil
	}

	if app.configHandler.MapKeyToString(app.envMap, key) == "" {
		return 0, nil
	}

	value, err := app.configHandler.MapKeyToCount(app.envMap, key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errUsage, err)
	}

	return timing.Ticks(value), nil
}

// hold records a semaphore acquired by a command, so that [App.Abort] can
// release it if the program is interrupted.
func (app *App) hold(sem *semaphore.Semaphore) {
	app.heldLock.Lock()
	defer app.heldLock.Unlock()

	app.held = sem
}

// release posts the held semaphore, if it was not released already. The lock
// is kept until the post has completed, so a command returning from release
// can safely close its handle.
func (app *App) release() error {
	app.heldLock.Lock()
	defer app.heldLock.Unlock()

	if app.held == nil {
		return nil
	}

	sem := app.held
	app.held = nil

	return sem.Post() //nolint:wrapcheck
}

// Abort releases any semaphore held by a running command. It is called when
// the program is interrupted while a command is still blocked or waiting.
func (app *App) Abort() {
	if err := app.release(); err != nil {
		slog.Warn("Failed to release held semaphore on interrupt.",
			"err", err,
		)
	}
}

// closeSemaphore closes a semaphore handle that is no longer needed.
func closeSemaphore(sem *semaphore.Semaphore) {
	if err := sem.Close(); err != nil {
		slog.Warn("Failed to close semaphore handle.",
			"name", sem.Name(),
			"err", err,
		)
	}
}

// defaultSemaphoreName returns the semaphore name used without configuration.
func defaultSemaphoreName() string {
	return fmt.Sprintf("/posixipc-%d", os.Getuid())
}
