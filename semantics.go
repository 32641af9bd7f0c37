// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx

import (
	"errors"
)

// Outcome classifies a fill result based on readx's three-way semantics.
//
// OutcomeFilled:      the buffer was completely filled.
// OutcomeEmpty:       clean end-of-stream before any byte was delivered.
// OutcomeTruncated:   partial progress, then the stream ended (ErrUnexpectedEOF).
// OutcomeInterrupted: a policy stopped retrying and surfaced ErrInterrupted.
// OutcomeFailure:     any other error.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeFilled
	OutcomeEmpty
	OutcomeTruncated
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFilled:
		return "Filled"
	case OutcomeEmpty:
		return "Empty"
	case OutcomeTruncated:
		return "Truncated"
	case OutcomeInterrupted:
		return "Interrupted"
	default:
		return "Failure"
	}
}

// IsInterrupted reports whether err carries the readx transient-interrupt
// semantic. It returns true for ErrInterrupted and wrappers (via errors.Is).
func IsInterrupted(err error) bool { return errors.Is(err, ErrInterrupted) }

// IsTruncated reports whether err marks a stream that ended after partial
// progress. It returns true for ErrUnexpectedEOF and wrappers (via
// errors.Is).
func IsTruncated(err error) bool { return errors.Is(err, ErrUnexpectedEOF) }

// IsNonFailure reports whether err should be treated as a non-failure in
// fill control flow: nil or ErrInterrupted.
//
// Typical usage: decide whether to keep a source alive without logging an
// error or tearing down the stream. An interrupt means the read never
// happened; the fill can simply be issued again.
func IsNonFailure(err error) bool { return err == nil || IsInterrupted(err) }

// ClassifyFill maps a FillOrEOF-shaped result to an Outcome. Use when a
// compact switch is preferred over inspecting the pair directly.
//
// Note: filled is only consulted when err is nil; FillOrEOF never reports
// filled alongside an error.
func ClassifyFill(filled bool, err error) Outcome {
	if err == nil {
		if filled {
			return OutcomeFilled
		}
		return OutcomeEmpty
	}
	if IsTruncated(err) {
		return OutcomeTruncated
	}
	if IsInterrupted(err) {
		return OutcomeInterrupted
	}
	return OutcomeFailure
}
