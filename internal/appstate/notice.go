package appstate

import (
	"sync"
	"time"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// DefaultNoticeTTL is how long a notice stays up before it dismisses itself.
const DefaultNoticeTTL = 5 * time.Second

type Notice struct {
	Message string
	Kind    NoticeKind
}

// Notifier holds at most one live notice. Pushing a new notice replaces the
// previous one and restarts the auto-dismiss timer; every path that ends a
// notice's life (manual dismissal, replacement, timeout, Close) cancels the
// timer exactly once.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notice
	timer   *time.Timer
	gen     uint64
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Success(message string) {
	n.push(Notice{Message: message, Kind: NoticeSuccess})
}

func (n *Notifier) Error(message string) {
	n.push(Notice{Message: message, Kind: NoticeError})
}

// Current returns the live notice, or nil.
func (n *Notifier) Current() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	c := *n.current
	return &c
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clearLocked()
}

// Close releases the timer on teardown.
func (n *Notifier) Close() {
	n.Dismiss()
}

func (n *Notifier) push(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.clearLocked()

	n.current = &notice
	gen := n.gen
	n.timer = time.AfterFunc(n.ttl, func() {
		n.expire(gen)
	})
}

// expire clears the notice only if it is still the one the timer was armed
// for; a replacement bumps the generation and owns a fresh timer.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.gen != gen {
		return
	}
	n.clearLocked()
}

func (n *Notifier) clearLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	n.gen++
}
