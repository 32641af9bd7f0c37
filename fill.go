// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx

// maxConsecutiveEmptyReads bounds how many (0, nil) results in a row a Reader
// may return before the fill helpers give up with ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// FillOrEOF reads from r until buf is completely filled, or until a clean
// end-of-stream, whichever comes first.
//
// It returns:
//   - (true, nil) if buf was completely filled. A zero-length buf is
//     vacuously filled and r is never called.
//   - (false, nil) if the first read attempt reported end-of-stream before
//     any byte was delivered — the stream was already exhausted.
//   - (false, ErrUnexpectedEOF) if at least one byte was delivered but the
//     stream ended before buf was complete.
//   - (false, err) for any other error surfaced by r, unchanged and
//     immediately.
//
// Reads that fail with ErrInterrupted (including wrapped forms) are retried
// silently and without limit; use FillOrEOFPolicy to bound or pace the
// retries. Buffer contents are unspecified on the false and error outcomes.
//
// FillOrEOF is intended for probing streams of fixed-size records: a clean
// end-of-stream between records is the expected way for the stream to finish,
// while a record cut short is a hard error.
func FillOrEOF(r Reader, buf []byte) (bool, error) {
	return fillOrEOF(r, buf, nil)
}

// FillOrEOFPolicy is like FillOrEOF but consults policy when a read attempt
// is interrupted.
//
// Semantics:
//   - If policy is nil, behavior is identical to FillOrEOF (unlimited silent
//     retries).
//   - If policy returns PolicyRetry on ErrInterrupted, the engine calls
//     policy.Yield(OpProbeRead) and retries the same attempt; otherwise the
//     interrupt error is returned unchanged.
func FillOrEOFPolicy(r Reader, buf []byte, policy RetryPolicy) (bool, error) {
	return fillOrEOF(r, buf, policy)
}

// Fill reads exactly len(buf) bytes from r into buf.
//
// It returns the number of bytes copied and an error if fewer bytes were
// read. The error is EOF only if no bytes were read. If an EOF happens after
// reading some but not all the bytes, Fill returns ErrUnexpectedEOF. On
// return, n == len(buf) if and only if err == nil.
//
// Unlike io.ReadFull, reads that fail with ErrInterrupted are retried
// silently; use FillPolicy to bound the retries.
func Fill(r Reader, buf []byte) (n int, err error) {
	return fillAtLeast(r, buf, len(buf), nil)
}

// FillPolicy is like Fill but consults policy on ErrInterrupted.
// A nil policy is identical to Fill.
func FillPolicy(r Reader, buf []byte, policy RetryPolicy) (n int, err error) {
	return fillAtLeast(r, buf, len(buf), policy)
}

// FillAtLeast reads from r into buf until it has read at least min bytes.
//
// It returns the number of bytes copied and an error if fewer bytes were
// read. The error is EOF only if no bytes were read. If an EOF happens after
// reading fewer than min bytes, FillAtLeast returns ErrUnexpectedEOF. If min
// is greater than len(buf), FillAtLeast returns ErrShortBuffer. On return,
// n >= min if and only if err == nil.
//
// Reads that fail with ErrInterrupted are retried silently.
func FillAtLeast(r Reader, buf []byte, min int) (n int, err error) {
	return fillAtLeast(r, buf, min, nil)
}

// FillAtLeastPolicy is like FillAtLeast but consults policy on
// ErrInterrupted. A nil policy is identical to FillAtLeast.
func FillAtLeastPolicy(r Reader, buf []byte, min int, policy RetryPolicy) (n int, err error) {
	return fillAtLeast(r, buf, min, policy)
}

// fillOrEOF is the probing engine. policy may be nil (retry forever).
func fillOrEOF(r Reader, buf []byte, policy RetryPolicy) (bool, error) {
	readSome := len(buf) == 0
	emptyReads := 0

	for len(buf) > 0 {
		n, err := r.Read(buf)
		if n < 0 {
			panic("readx: reader returned negative count from Read")
		}
		if n > 0 {
			readSome = true
			buf = buf[n:]
			emptyReads = 0
		}

		if err != nil {
			if err == EOF {
				break
			}
			if IsInterrupted(err) {
				if policy != nil {
					if policy.OnInterrupt(OpProbeRead) == PolicyReturn {
						return false, err
					}
					policy.Yield(OpProbeRead)
				}
				continue
			}
			return false, err
		}

		if n == 0 {
			emptyReads++
			if emptyReads >= maxConsecutiveEmptyReads {
				return false, ErrNoProgress
			}
		}
	}

	if len(buf) > 0 && readSome {
		return false, ErrUnexpectedEOF
	}
	return readSome, nil
}

// fillAtLeast is the strict engine shared by Fill and FillAtLeast.
// policy may be nil (retry forever).
func fillAtLeast(r Reader, buf []byte, min int, policy RetryPolicy) (n int, err error) {
	if min > len(buf) {
		return 0, ErrShortBuffer
	}
	emptyReads := 0

	for n < min {
		nn, er := r.Read(buf[n:])
		if nn < 0 {
			panic("readx: reader returned negative count from Read")
		}
		if nn > 0 {
			n += nn
			emptyReads = 0
		}

		if er != nil {
			if er == EOF {
				// EOF is absorbed once min bytes have arrived.
				if n >= min {
					break
				}
				if n > 0 {
					return n, ErrUnexpectedEOF
				}
				return 0, EOF
			}
			if IsInterrupted(er) {
				if policy != nil {
					if policy.OnInterrupt(OpFillRead) == PolicyReturn {
						return n, er
					}
					policy.Yield(OpFillRead)
				}
				continue
			}
			return n, er
		}

		if nn == 0 {
			emptyReads++
			if emptyReads >= maxConsecutiveEmptyReads {
				return n, ErrNoProgress
			}
		}
	}
	return n, nil
}
