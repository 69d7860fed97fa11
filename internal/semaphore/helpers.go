package semaphore

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"
)

// tempPath returns a random path for an unpublished semaphore object.
func (h *Handler) tempPath() string {
	return h.baseDir + "/" + objectPrefix + strconv.FormatUint(rand.Uint64(), 36) //nolint:gosec
}

// initialObject returns the contents of a newly created semaphore object.
func initialObject() []byte {
	obj := make([]byte, objectSize)
	binary.NativeEndian.PutUint32(obj[0:4], InitialValue)

	return obj
}
