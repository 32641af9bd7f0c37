// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx

import "runtime"

// Op identifies which fill engine observed the interrupt.
//
// This is intentionally coarse-grained: it lets a RetryPolicy distinguish a
// strict fill (where giving up leaves a useless partial buffer) from a probe
// (where giving up can still be reported cleanly by the caller).
type Op uint8

const (
	OpFillRead Op = iota
	OpProbeRead
)

func (op Op) String() string {
	switch op {
	case OpFillRead:
		return "FillRead"
	case OpProbeRead:
		return "ProbeRead"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells a fill engine whether it should return to the caller
// or attempt the interrupted read again.
type PolicyAction uint8

const (
	// PolicyReturn means: stop retrying and return ErrInterrupted to the
	// caller, along with any bytes already delivered.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: do not return; retry the same read after yielding.
	PolicyRetry
)

// RetryPolicy customizes how a fill engine reacts to ErrInterrupted.
//
// This is a decision function mapping (operation, interrupt) to an action,
// plus a yield hook for when retry is selected.
//
// Contract expectations:
//   - OnInterrupt is called once per interrupted read attempt.
//   - If PolicyRetry is returned, the engine calls Yield(op) and then retries
//     the identical read. No state has changed: the interrupted read did not
//     occur.
//   - Policies may carry per-call state (see LimitPolicy); such values must
//     not be shared across concurrent fills.
type RetryPolicy interface {
	Yield(op Op)
	OnInterrupt(op Op) PolicyAction
}

// PolicyFunc is a convenience implementation for callers that want to inject
// behavior without defining a struct type.
//
// Default behaviors when fields are nil:
//   - YieldFunc: calls runtime.Gosched() to yield the processor
//   - InterruptFunc: returns PolicyRetry (interrupts stay invisible)
type PolicyFunc struct {
	YieldFunc     func(op Op)
	InterruptFunc func(op Op) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) OnInterrupt(op Op) PolicyAction {
	if p.InterruptFunc != nil {
		return p.InterruptFunc(op)
	}
	return PolicyRetry
}

// ReturnPolicy is the simplest policy: never retries. The first interrupt
// surfaces as ErrInterrupted, making interruption fully visible to callers
// that run their own retry loop.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) OnInterrupt(Op) PolicyAction { return PolicyReturn }

// RetryForeverPolicy retries every interrupt, yielding the processor between
// attempts. It matches the behavior of the plain fill helpers except that the
// goroutine is rescheduled rather than immediately re-issuing the read.
type RetryForeverPolicy struct{}

func (RetryForeverPolicy) Yield(Op) { runtime.Gosched() }

func (RetryForeverPolicy) OnInterrupt(Op) PolicyAction { return PolicyRetry }

// LimitPolicy retries up to Max interrupts, then returns. The zero value
// never retries.
//
// The count accumulates in the policy value, so a fresh LimitPolicy (or a
// Reset) is needed per fill call, and a LimitPolicy must not be shared across
// concurrent fills.
type LimitPolicy struct {
	Max  int
	seen int
}

func (*LimitPolicy) Yield(Op) {}

func (p *LimitPolicy) OnInterrupt(Op) PolicyAction {
	if p.seen >= p.Max {
		return PolicyReturn
	}
	p.seen++
	return PolicyRetry
}

// Seen returns how many interrupts this policy has absorbed since the last
// Reset.
func (p *LimitPolicy) Seen() int { return p.seen }

// Reset restores the retry budget.
func (p *LimitPolicy) Reset() { p.seen = 0 }

// BackoffPolicy retries every interrupt, sleeping through a Backoff between
// attempts to damp interrupt storms. The zero value uses the Backoff
// defaults (500µs base, 100ms ceiling).
//
// Reset the embedded Backoff to reuse the policy across fills with a fresh
// progression.
type BackoffPolicy struct {
	Backoff Backoff
}

func (p *BackoffPolicy) Yield(Op) { p.Backoff.Wait() }

func (*BackoffPolicy) OnInterrupt(Op) PolicyAction { return PolicyRetry }
