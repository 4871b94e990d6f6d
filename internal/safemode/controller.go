package safemode

import (
	"log"
	"strings"
	"sync"

	"github.com/danielpatrickdp/decision-kernel/internal/safety"
)

// fallbackReason keeps the entry-reason invariant: safe mode is never
// entered without a human-readable justification.
const fallbackReason = "unspecified safety inconsistency"

// #region controller

// Controller owns the safe-mode flag, the only mutable shared state
// in the kernel. Each kernel instance gets its own controller so
// independent kernels (and tests) cannot interfere; all access goes
// through the internal mutex.
type Controller struct {
	mu     sync.Mutex
	active bool
	reason string
}

// NewController returns a controller in the Normal state.
func NewController() *Controller {
	return &Controller{}
}

// #endregion controller

// #region enter

// Enter forces safe mode with the given reason. Unconditional: it
// always succeeds and overwrites any previous reason. An empty reason
// is replaced by a fixed placeholder so every entry stays justified.
func (c *Controller) Enter(reason string) {
	if strings.TrimSpace(reason) == "" {
		reason = fallbackReason
	}
	c.mu.Lock()
	c.active = true
	c.reason = reason
	c.mu.Unlock()
	log.Printf("[SAFE MODE] entered reason=%s", reason)
}

// #endregion enter

// #region exit

// Exit leaves safe mode only when authorised. Authorization must come
// from an external authority channel; the kernel's own signals never
// produce it, so an agent cannot self-certify its safety. An
// unauthorised exit is a no-op and returns false so the refusal is
// observable.
func (c *Controller) Exit(authorised bool) bool {
	if !authorised {
		log.Printf("[SAFE MODE] exit refused: not authorised")
		return false
	}
	c.mu.Lock()
	c.active = false
	c.reason = ""
	c.mu.Unlock()
	log.Printf("[SAFE MODE] exited by authorised command")
	return true
}

// #endregion exit

// #region snapshot

// State is a point-in-time copy of the controller's state.
type State struct {
	Active bool
	Reason string
}

// Snapshot returns the current state under the lock.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Active: c.active, Reason: c.reason}
}

// Active reports whether safe mode is currently engaged.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Reason returns the current safe-mode reason ("" when Normal).
func (c *Controller) Reason() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

// #endregion snapshot

// #region safe-actions

// SafeActions returns the only actions eligible for execution while
// safe mode is active. The controller does not police that callers
// actually draw from this set; that contract sits with the execution
// layer.
func (c *Controller) SafeActions() []safety.SafeAction {
	return safety.NullipotentActions()
}

// #endregion safe-actions
