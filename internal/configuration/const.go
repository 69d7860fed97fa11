package configuration

const (
	// DiagnosticMaxLen is the maximum length of a diagnostic context (such as
	// "FIFO <path> creation failed") attached to an error.
	DiagnosticMaxLen = 200

	// TicksPerSecond is the amount of CPU-time ticks making up one second of
	// process CPU time.
	TicksPerSecond = 1000000

	// FifoMode is the permission mode of created FIFOs (owner read/write).
	FifoMode = 0o600

	// SemaphoreMode is the permission mode of created named semaphores (owner
	// read/write).
	SemaphoreMode = 0o600

	// SemaphoreInitialValue is the value a newly created named semaphore
	// starts with, making it a binary mutex.
	SemaphoreInitialValue = 1

	// EnvFifoPath is the configuration key for the default FIFO path.
	EnvFifoPath = "POSIXIPC_FIFO_PATH"

	// EnvFifoFlags is the configuration key for the default FIFO open flags.
	EnvFifoFlags = "POSIXIPC_FIFO_FLAGS"

	// EnvSemaphoreName is the configuration key for the default semaphore name.
	EnvSemaphoreName = "POSIXIPC_SEM_NAME"

	// EnvWaitTicks is the configuration key for the default busy-wait ticks.
	EnvWaitTicks = "POSIXIPC_WAIT_TICKS"
)
