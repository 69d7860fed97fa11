package semaphore

import (
	"math"

	"github.com/desertwitch/posixipc/internal/configuration"
)

const (
	// Mode is the permission mode of any created named semaphore.
	Mode = configuration.SemaphoreMode

	// InitialValue is the value of any newly created named semaphore.
	InitialValue = configuration.SemaphoreInitialValue

	// MaxValue is the highest value a [Semaphore] can be posted to.
	MaxValue = math.MaxInt32

	// BaseDir is the directory holding the named semaphore objects.
	BaseDir = "/dev/shm"

	// objectPrefix is prefixed to a name to form the object's filename.
	objectPrefix = "sem."

	// objectSize is the size of a semaphore object: the count, the amount of
	// waiters and padding.
	objectSize = 32

	// nameMax is the maximum length of a filename within [BaseDir].
	nameMax = 255

	// tempAttempts is how often a temporary object filename is generated
	// before creation gives up.
	tempAttempts = 100
)
