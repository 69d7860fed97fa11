//go:build linux

package semaphore

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/desertwitch/posixipc/internal/schema"
	"github.com/desertwitch/posixipc/internal/semaphore/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// spyUnix records the paths opened through the real [schema.Unix].
type spyUnix struct {
	*schema.Unix

	mu     sync.Mutex
	opened []string
}

func (s *spyUnix) Open(path string, mode int, perm uint32) (int, error) {
	s.mu.Lock()
	s.opened = append(s.opened, path)
	s.mu.Unlock()

	return s.Unix.Open(path, mode, perm)
}

func newTestHandler(t *testing.T, unixHandler unixProvider) *Handler {
	t.Helper()

	handler := NewHandler(unixHandler)
	handler.baseDir = t.TempDir()

	return handler
}

// TestInit_CreateAndFallback tests that a second initialization of the same
// name opens the existing named semaphore, and both handles exclude each other.
func TestInit_CreateAndFallback(t *testing.T) {
	t.Parallel()

	spy := &spyUnix{Unix: &schema.Unix{}}
	handler := newTestHandler(t, spy)
	objPath := filepath.Join(handler.baseDir, "sem.test")

	s1, err := handler.Init("/test")
	require.NoError(t, err)
	assert.Equal(t, "/test", s1.Name())
	assert.NotContains(t, spy.opened, objPath, "expected the first handle to be created")

	info, err := os.Stat(objPath)
	require.NoError(t, err, "expected the object to exist")
	assert.Equal(t, os.FileMode(0), info.Mode().Perm()&^os.FileMode(Mode), "expected no permissions beyond the mode")

	entries, err := os.ReadDir(handler.baseDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "expected no temporary objects to remain")

	s2, err := handler.Init("test")
	require.NoError(t, err)
	assert.Contains(t, spy.opened, objPath, "expected the second handle to be opened")

	v, err := s2.Value()
	require.NoError(t, err)
	assert.Equal(t, InitialValue, v, "expected the initial value")

	ok, err := s1.TryWait()
	require.NoError(t, err)
	assert.True(t, ok, "expected the first handle to acquire")

	ok, err = s2.TryWait()
	require.NoError(t, err)
	assert.False(t, ok, "expected the second handle to be excluded")

	require.NoError(t, s1.Post())

	ok, err = s2.TryWait()
	require.NoError(t, err)
	assert.True(t, ok, "expected the second handle to acquire after release")
	require.NoError(t, s2.Post())

	require.NoError(t, handler.Destroy(s1, "/test"))

	_, err = os.Stat(objPath)
	require.ErrorIs(t, err, os.ErrNotExist, "expected the object to be unlinked")

	v, err = s2.Value()
	require.NoError(t, err, "expected the other handle to remain usable")
	assert.Equal(t, 1, v)
	require.NoError(t, s2.Close())
}

// TestInit_InvalidName tests the rejection of invalid names.
func TestInit_InvalidName(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})

	for _, name := range []string{"", "/", "///", "a/b", "/a/b", strings.Repeat("x", nameMax)} {
		sem, err := handler.Init(name)
		require.ErrorIs(t, err, ErrCreateFailed, "name %q", name)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", name)
		assert.Nil(t, sem)
	}

	_, err := handler.Init(strings.Repeat("x", nameMax-len(objectPrefix)))
	require.NoError(t, err, "expected the longest valid name to work")
}

// TestInit_Fail_Create tests a creation failure other than an existing name.
func TestInit_Fail_Create(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})
	handler.baseDir = filepath.Join(handler.baseDir, "missing")

	sem, err := handler.Init("test")
	require.ErrorIs(t, err, ErrCreateFailed)
	require.ErrorIs(t, err, unix.ENOENT)
	assert.NotErrorIs(t, err, ErrOpenFailed)
	assert.Nil(t, sem)
}

// TestInit_Fail_InvalidObject tests the fallback opening of an object that is
// not a semaphore.
func TestInit_Fail_InvalidObject(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})
	require.NoError(t, os.WriteFile(filepath.Join(handler.baseDir, "sem.small"), []byte{1, 0, 0, 0}, 0o600))

	sem, err := handler.Init("small")
	require.ErrorIs(t, err, ErrOpenFailed)
	require.ErrorIs(t, err, unix.EINVAL)
	assert.Nil(t, sem)
}

// TestInit_Fail_UnlinkedInBetween tests that a name unlinked between the
// failed creation and the fallback opening is returned as an opening error.
func TestInit_Fail_UnlinkedInBetween(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	handler := NewHandler(unixMock)
	handler.baseDir = "/shm"

	unixMock.On("Open", mock.Anything, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, uint32(Mode)).Return(5, nil).Once()
	unixMock.On("Write", 5, initialObject()).Return(objectSize, nil).Once()
	unixMock.On("Mmap", 5, int64(0), objectSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED).Return(make([]byte, objectSize), nil).Once()
	unixMock.On("Link", mock.Anything, "/shm/sem.race").Return(unix.EEXIST).Once()
	unixMock.On("Munmap", mock.Anything).Return(nil).Once()
	unixMock.On("Close", 5).Return(nil).Once()
	unixMock.On("Unlink", mock.Anything).Return(nil).Once()
	unixMock.On("Open", "/shm/sem.race", unix.O_RDWR|unix.O_CLOEXEC, uint32(0)).Return(-1, unix.ENOENT).Once()

	sem, err := handler.Init("race")
	require.ErrorIs(t, err, ErrOpenFailed)
	require.ErrorIs(t, err, unix.ENOENT)
	assert.NotErrorIs(t, err, ErrCreateFailed)
	assert.Nil(t, sem)
}

// TestOpen tests opening existing and missing named semaphores without
// creating them.
func TestOpen(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})

	sem, err := handler.Open("missing")
	require.ErrorIs(t, err, ErrOpenFailed)
	require.ErrorIs(t, err, unix.ENOENT)
	assert.Nil(t, sem)

	_, err = os.Stat(filepath.Join(handler.baseDir, "sem.missing"))
	require.ErrorIs(t, err, os.ErrNotExist, "expected nothing to be created")

	_, err = handler.Open("a/b")
	require.ErrorIs(t, err, ErrOpenFailed)
	require.ErrorIs(t, err, ErrInvalidName)

	s1, err := handler.Init("existing")
	require.NoError(t, err)

	s2, err := handler.Open("/existing")
	require.NoError(t, err)

	ok, err := s2.TryWait()
	require.NoError(t, err)
	assert.True(t, ok, "expected the opened handle to share the value")

	v, err := s1.Value()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, s2.Close())
	require.NoError(t, handler.Destroy(s1, "existing"))
}

// TestDestroy_Fail_Close tests that a failing close skips the unlinking.
func TestDestroy_Fail_Close(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})
	objPath := filepath.Join(handler.baseDir, "sem.closed")

	sem, err := handler.Init("closed")
	require.NoError(t, err)
	require.NoError(t, sem.Close())

	err = handler.Destroy(sem, "closed")
	require.ErrorIs(t, err, ErrCloseFailed)
	require.ErrorIs(t, err, ErrClosed)
	assert.NotErrorIs(t, err, ErrUnlinkFailed)

	_, err = os.Stat(objPath)
	require.NoError(t, err, "expected the object to still exist")
}

// TestDestroy_Fail_Munmap tests that a failing unmap skips the unlinking.
func TestDestroy_Fail_Munmap(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	handler := NewHandler(unixMock)

	sem := newSemaphore("mocked", make([]byte, objectSize), unixMock)
	unixMock.On("Munmap", mock.Anything).Return(unix.EINVAL).Once()

	err := handler.Destroy(sem, "mocked")
	require.ErrorIs(t, err, ErrCloseFailed)
	require.ErrorIs(t, err, unix.EINVAL)

	unixMock.AssertNotCalled(t, "Unlink", mock.Anything)

	_, err = sem.Value()
	require.ErrorIs(t, err, ErrClosed, "expected the handle to be unusable")
}

// TestDestroy_Fail_Unlink tests the failure of the unlinking.
func TestDestroy_Fail_Unlink(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})

	sem, err := handler.Init("gone")
	require.NoError(t, err)
	require.NoError(t, handler.Unlink("gone"))

	err = handler.Destroy(sem, "gone")
	require.ErrorIs(t, err, ErrUnlinkFailed)
	require.ErrorIs(t, err, unix.ENOENT)
}

// TestWait_Blocks tests that a wait blocks until another handle posts.
func TestWait_Blocks(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})

	s1, err := handler.Init("block")
	require.NoError(t, err)
	defer s1.Close()

	s2, err := handler.Init("block")
	require.NoError(t, err)
	defer s2.Close()

	require.NoError(t, s1.Wait())

	var done atomic.Bool
	go func() {
		if err := s2.Wait(); err == nil {
			done.Store(true)
		}
	}()

	assert.Never(t, done.Load, 100*time.Millisecond, 10*time.Millisecond, "expected the wait to block")

	require.NoError(t, s1.Post())

	assert.Eventually(t, done.Load, 5*time.Second, 10*time.Millisecond, "expected the wait to be released")

	v, err := s1.Value()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

// TestWait_MutualExclusion tests that handles of the same name exclude each
// other from a critical section.
func TestWait_MutualExclusion(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})

	const workers = 8
	const iterations = 200

	handles := make([]*Semaphore, 2) //nolint:mnd
	for i := range handles {
		sem, err := handler.Init("mutex")
		require.NoError(t, err)
		defer sem.Close()

		handles[i] = sem
	}

	var inside, violations, total atomic.Int64
	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)
		go func(sem *Semaphore) {
			defer wg.Done()

			for range iterations {
				if err := sem.Wait(); err != nil {
					violations.Add(1)

					return
				}
				if inside.Add(1) != 1 {
					violations.Add(1)
				}
				total.Add(1)
				inside.Add(-1)
				if err := sem.Post(); err != nil {
					violations.Add(1)

					return
				}
			}
		}(handles[w%len(handles)])
	}

	wg.Wait()

	assert.Zero(t, violations.Load(), "expected no concurrent entries")
	assert.Equal(t, int64(workers*iterations), total.Load())

	v, err := handles[0].Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "expected the semaphore to be released")
}

// TestWait_Fail_Futex tests a failing futex wait.
func TestWait_Fail_Futex(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	sem := newSemaphore("mocked", make([]byte, objectSize), unixMock)

	unixMock.On("FutexWait", sem.value, uint32(0)).Return(unix.EINTR).Once()
	unixMock.On("FutexWait", sem.value, uint32(0)).Return(unix.EFAULT).Once()

	err := sem.Wait()
	require.ErrorIs(t, err, ErrWaitFailed)
	require.ErrorIs(t, err, unix.EFAULT)
	assert.Equal(t, uint32(0), atomic.LoadUint32(sem.waiters), "expected the waiter to be deregistered")
}

// TestPost_Fail_Wake tests a failing wake of waiters.
func TestPost_Fail_Wake(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	sem := newSemaphore("mocked", make([]byte, objectSize), unixMock)
	atomic.StoreUint32(sem.waiters, 1)

	unixMock.On("FutexWake", sem.value, 1).Return(0, unix.EFAULT).Once()

	err := sem.Post()
	require.ErrorIs(t, err, ErrPostFailed)

	v, err := sem.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "expected the value to be incremented regardless")
}

// TestPost_Overflow tests posting a semaphore at its maximum value.
func TestPost_Overflow(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	sem := newSemaphore("mocked", make([]byte, objectSize), unixMock)
	atomic.StoreUint32(sem.value, MaxValue)

	require.ErrorIs(t, sem.Post(), ErrOverflow)

	v, err := sem.Value()
	require.NoError(t, err)
	assert.Equal(t, MaxValue, v)
}

// TestClosed tests that a closed semaphore cannot be used.
func TestClosed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &schema.Unix{})

	sem, err := handler.Init("closed")
	require.NoError(t, err)
	require.NoError(t, sem.Close())

	require.ErrorIs(t, sem.Close(), ErrClosed)
	require.ErrorIs(t, sem.Wait(), ErrClosed)
	require.ErrorIs(t, sem.Post(), ErrClosed)

	_, err = sem.TryWait()
	require.ErrorIs(t, err, ErrClosed)

	_, err = sem.Value()
	require.ErrorIs(t, err, ErrClosed)

	var nilSem *Semaphore
	require.ErrorIs(t, nilSem.Close(), ErrClosed)
}

// TestInit_SystemDir tests the named semaphores within the real [BaseDir].
func TestInit_SystemDir(t *testing.T) {
	t.Parallel()

	if info, err := os.Stat(BaseDir); err != nil || !info.IsDir() {
		t.Skip("no shared memory directory available")
	}

	handler := NewHandler(&schema.Unix{})
	name := "/posixipc-test-" + strconv.Itoa(os.Getpid())

	sem, err := handler.Init(name)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(BaseDir, "sem."+strings.TrimPrefix(name, "/")))
	require.NoError(t, err)

	require.NoError(t, handler.Destroy(sem, name))

	_, err = os.Stat(filepath.Join(BaseDir, "sem."+strings.TrimPrefix(name, "/")))
	require.ErrorIs(t, err, os.ErrNotExist)
}
