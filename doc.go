// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx

// Package readx provides exact-fill read helpers that extend Go's standard io
// semantics while remaining fully compatible with its interfaces.
//
// Three-way fill outcome
//
// FillOrEOF fills a buffer completely from a Reader and reports which of three
// outcomes occurred:
//   - (true, nil): the buffer was completely filled.
//   - (false, nil): the very first read attempt hit end-of-stream before any
//     byte was delivered. The stream was already exhausted — a clean, expected
//     condition when probing for a record that may or may not be present.
//   - (false, ErrUnexpectedEOF): at least one byte arrived, then the stream
//     ended before the buffer was complete. A partial record is unusable, so
//     this is an error.
//
// io.ReadFull cannot make the middle distinction: it collapses "stream was
// empty from the start" and "stream ended partway through" into two different
// sentinel errors the caller must compare against. FillOrEOF turns the clean
// case into a boolean.
//
// Transient interrupts
//
// ErrInterrupted marks a read attempt that was aborted for a recoverable,
// non-data-related reason. The plain helpers retry such attempts silently and
// without limit; the Policy variants let the caller bound or pace the retries
// (see RetryPolicy, LimitPolicy, BackoffPolicy). InterruptReader bridges
// OS-level EINTR into this classification.
//
// Note: a reader that repeatedly returns (0, nil) makes no progress and does
// not signal end-of-stream; the helpers fail such readers with ErrNoProgress
// rather than spin.
