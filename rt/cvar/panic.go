package cvar

import (
	"bytes"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// PanicPolicy controls how observer panics are handled.
type PanicPolicy int

const (
	// RecoverAndReport recovers the panic and reports it via PanicHandler (or stderr by default).
	RecoverAndReport PanicPolicy = iota
	// RecoverOnly recovers the panic without reporting it.
	RecoverOnly
	// RepanicAfterReport reports the panic, then panics again with the same value.
	// The panic unwinds through the Set* call that triggered the notification.
	RepanicAfterReport
)

// PanicInfo describes a recovered observer panic.
type PanicInfo struct {
	// Kind is the canonical kind of the Var at the time of the notification.
	Kind Kind
	// Observer is the observer that panicked.
	Observer Observer
	// Value is the value passed to panic.
	Value any
	// Stack is the goroutine stack captured at recovery (debug.Stack).
	Stack []byte
}

// PanicHandler is called when an observer panics (subject to policy).
type PanicHandler func(info PanicInfo)

// invoke runs o and applies the configured panic policy.
func (v *Var) invoke(o Observer) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if v.cfg.panicPolicy == RecoverOnly {
			return
		}
		info := PanicInfo{
			Kind:     v.kind,
			Observer: o,
			Value:    p,
			Stack:    debug.Stack(),
		}
		if v.cfg.onPanic != nil {
			callPanicHandlerNoPanic(v.cfg.onPanic, info)
		} else {
			reportPanicToStderr(info)
		}
		if v.cfg.panicPolicy == RepanicAfterReport {
			panic(p)
		}
	}()
	o.CVarChanged(v)
}

func callPanicHandlerNoPanic(h PanicHandler, info PanicInfo) {
	defer func() {
		if p := recover(); p != nil {
			reportPanicToStderr(PanicInfo{Kind: info.Kind, Value: fmt.Sprintf("panic handler panicked: %v", p)})
		}
	}()
	h(info)
}

var stderrMu sync.Mutex

func reportPanicToStderr(info PanicInfo) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "cvar: observer panic kind=%s value=%v\n", info.Kind, info.Value)
	if len(info.Stack) > 0 {
		_, _ = buf.Write(info.Stack)
		if info.Stack[len(info.Stack)-1] != '\n' {
			_ = buf.WriteByte('\n')
		}
	}

	stderrMu.Lock()
	_, _ = os.Stderr.Write(buf.Bytes())
	stderrMu.Unlock()
}
