package app

import (
	"context"
	"sync"
)

// ShutdownTerminator ends the application by cancelling its root context and
// remembering the exit code for main.
type ShutdownTerminator struct {
	cancel context.CancelFunc

	mu         sync.Mutex
	code       int
	terminated bool
}

func NewShutdownTerminator(cancel context.CancelFunc) *ShutdownTerminator {
	return &ShutdownTerminator{cancel: cancel}
}

// Terminate implements binding.Terminator. Only the first call sets the code.
func (t *ShutdownTerminator) Terminate(code int) {
	t.mu.Lock()
	if !t.terminated {
		t.terminated = true
		t.code = code
	}
	t.mu.Unlock()
	t.cancel()
}

// Code returns the exit code and whether Terminate was called.
func (t *ShutdownTerminator) Code() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.code, t.terminated
}
