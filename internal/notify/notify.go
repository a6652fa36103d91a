// Package notify is the toast stream of the front end: every user action
// outcome lands here and the view layer reads the recent entries back.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Notification struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const defaultCapacity = 50

type Center struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	lg       *zap.SugaredLogger
	now      func() time.Time
}

func NewCenter(lg *zap.SugaredLogger) *Center {
	return &Center{
		capacity: defaultCapacity,
		lg:       lg,
		now:      time.Now,
	}
}

func (c *Center) Success(message string) Notification {
	return c.push(KindSuccess, message)
}

func (c *Center) Warning(message string) Notification {
	return c.push(KindWarning, message)
}

func (c *Center) Error(message string) Notification {
	return c.push(KindError, message)
}

func (c *Center) push(kind Kind, message string) Notification {
	n := Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		At:      c.now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	if len(c.items) > c.capacity {
		c.items = c.items[len(c.items)-c.capacity:]
	}
	c.mu.Unlock()

	if c.lg != nil {
		c.lg.Infof("notification [%s]: %s", kind, message)
	}

	return n
}

// Recent returns the buffered notifications, newest last.
func (c *Center) Recent() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Clear drops the buffer, used on logout so the next session does not see
// the previous user's toasts.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}
