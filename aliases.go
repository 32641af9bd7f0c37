// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// IDE note: readx re-exports (aliases) the reader-side io interfaces so that
// users can stay in the "readx" namespace while reading documentation and
// navigating types. The contracts below mirror the standard io expectations,
// with readx-specific behavior documented at call sites such as FillOrEOF.

package readx

import (
	"io"
)

// Reader is implemented by types that can read bytes into p.
//
// Read must return the number of bytes read (0 <= n <= len(p)) and any error
// encountered. Even if Read returns n > 0, it may return a non-nil error to
// signal a condition observed after producing those bytes; the fill helpers
// consume such bytes before acting on the error.
//
// A return of (0, nil) means "no progress", not end-of-stream. End-of-stream
// is signaled by EOF. Well-behaved implementations should avoid returning
// (0, nil) except when len(p) == 0.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// ReadCloser groups Read and Close.
//
// ReadCloser is an alias of io.ReadCloser.
type ReadCloser = io.ReadCloser

// ByteReader reads and returns a single byte.
//
// ByteReader is an alias of io.ByteReader.
type ByteReader = io.ByteReader

// ReaderAt reads from the underlying input at a given offset.
//
// ReaderAt should not affect and should not be affected by the current seek
// offset. Implementations must return a non-nil error when n < len(p).
//
// ReaderAt is an alias of io.ReaderAt.
type ReaderAt = io.ReaderAt

// Common sentinel errors re-exported for convenience.
//
// Note: readx also defines the semantic non-failure error ErrInterrupted used
// by the fill helpers and InterruptReader; it is not part of the standard io
// set.
var (
	// EOF is returned by Read when no more input is available.
	// Functions should return EOF only to signal a graceful end of input.
	EOF = io.EOF

	// ErrUnexpectedEOF means EOF was encountered earlier than expected.
	// The fill helpers synthesize it when the stream ends after partial
	// progress: some bytes arrived but the buffer could not be completed.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrNoProgress reports that a Reader returned no data and no error after
	// multiple Read calls. The fill helpers synthesize it to detect broken
	// Readers (i.e., lack of forward progress) instead of spinning.
	ErrNoProgress = io.ErrNoProgress

	// ErrShortBuffer means a provided buffer was too small to complete the
	// operation. FillAtLeast returns it when min exceeds the buffer length.
	ErrShortBuffer = io.ErrShortBuffer
)
