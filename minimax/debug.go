//go:build debug
// +build debug

package minimax

import (
	"bytes"
	"fmt"
	"sync"
)

type lumberjack struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func makeLumberJack() lumberjack {
	return lumberjack{buf: new(bytes.Buffer)}
}

func (l *lumberjack) log(msg string, args ...interface{}) {
	l.mu.Lock()
	fmt.Fprintf(l.buf, msg, args...)
	l.buf.WriteByte('\n')
	l.mu.Unlock()
}

func (l *lumberjack) Reset() { l.mu.Lock(); l.buf.Reset(); l.mu.Unlock() }

func (l *lumberjack) Log() string { l.mu.Lock(); defer l.mu.Unlock(); return l.buf.String() }
