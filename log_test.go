package stackarray

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	a := Of[int64, [16]byte](1, 2)
	requirePanicsWith(t, ErrCapacityExceeded, func() { a.Append(3) })

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "stackarray: precondition violated", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "capacity exceeded")
}

func TestCheckedVariantsDoNotLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	a := Of[int64, [16]byte](1, 2)
	assert.Error(t, a.TryAppend(3))
	_, err := a.TryGet(5)
	assert.Error(t, err)
	assert.Error(t, a.TryReserve(1))

	// Successful operations never log either.
	a.Set(0, 5)
	a.Remove(1)

	assert.Zero(t, logs.Len())
}

func TestDefaultLogger(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
}

func TestSetLoggerConcurrentWithFailures(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if i%2 == 0 {
					SetLogger(zap.NewNop())
					continue
				}
				var a Array[int64, [8]byte]
				func() {
					defer func() { _ = recover() }()
					a.Get(0)
				}()
			}
		}()
	}
	wg.Wait()

	SetLogger(nil)
	assert.NotNil(t, Logger())
}
