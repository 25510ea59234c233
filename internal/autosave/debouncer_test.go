package autosave

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testDelay = 50 * time.Millisecond

func TestTriggerCoalescesBurst(t *testing.T) {
	var calls atomic.Int32
	var state atomic.Int32
	var saved atomic.Int32

	d := New(testDelay, func() {
		calls.Add(1)
		saved.Store(state.Load())
	})

	for i := int32(1); i <= 3; i++ {
		state.Store(i)
		d.Trigger()
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDelay)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(3), saved.Load())
}

func TestTriggerAfterQuietPeriodSavesAgain(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	d.Trigger()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger()
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestSuppressIgnoresTriggersAndDropsPending(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	d.Trigger()
	d.Suppress(func() {
		d.Trigger()
		d.Trigger()
		assert.False(t, d.Pending())
	})

	time.Sleep(3 * testDelay)
	assert.Zero(t, calls.Load())

	d.Trigger()
	assert.True(t, d.Pending())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestSuppressWaitsForRunningSave(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var running atomic.Bool
	d := New(time.Millisecond, func() {
		running.Store(true)
		close(started)
		<-release
		running.Store(false)
	})

	d.Trigger()
	<-started

	entered := make(chan bool, 1)
	go d.Suppress(func() { entered <- running.Load() })

	select {
	case <-entered:
		t.Fatal("suppressed section ran while a save was in progress")
	case <-time.After(3 * testDelay):
	}
	assert.True(t, d.Suppressed())

	close(release)
	select {
	case wasRunning := <-entered:
		assert.False(t, wasRunning)
	case <-time.After(time.Second):
		t.Fatal("suppressed section never ran")
	}
	assert.Eventually(t, func() bool { return !d.Suppressed() }, time.Second, 5*time.Millisecond)
}

func TestNoSaveStartsWhileSuppressed(t *testing.T) {
	var calls atomic.Int32
	d := New(time.Millisecond, func() { calls.Add(1) })

	d.Suppress(func() {
		d.Trigger()
		time.Sleep(3 * testDelay)
		assert.Zero(t, calls.Load())
	})
	time.Sleep(3 * testDelay)
	assert.Zero(t, calls.Load())
}

func TestFlushRunsPendingNow(t *testing.T) {
	var calls atomic.Int32
	d := New(time.Hour, func() { calls.Add(1) })

	d.Flush()
	assert.Zero(t, calls.Load())

	d.Trigger()
	d.Flush()
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}

func TestStop(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()
	d.Trigger()

	time.Sleep(3 * testDelay)
	assert.Zero(t, calls.Load())
}
