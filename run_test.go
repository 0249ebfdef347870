package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/topmap/TopMap/lib/clog"
)

func TestInterruptOnSignal(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	interrupt, stop := interruptOnSignal(sigs, clog.Discard())
	defer stop()
	assert.False(t, interrupt.Load())
	sigs <- os.Interrupt
	assert.Eventually(t, interrupt.Load, time.Second, 5*time.Millisecond)
}

func TestInterruptOnSignalStop(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	interrupt, stop := interruptOnSignal(sigs, clog.Discard())
	stop()
	time.Sleep(20 * time.Millisecond)
	sigs <- os.Interrupt
	time.Sleep(20 * time.Millisecond)
	assert.False(t, interrupt.Load())
}

func TestProgressPrinterOncePerPercent(t *testing.T) {
	calls := 0
	logger := clog.New(nil, writerFunc(func(p []byte) (int, error) {
		calls++
		return len(p), nil
	}))
	progress := progressPrinter(logger)
	for i := 1; i <= 1000; i++ {
		progress(i, 1000)
	}
	assert.Equal(t, 101, calls)
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
