// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx

import "errors"

// readx introduces one semantic error for transient read interruption.
//
// Mental model:
//   - ErrInterrupted: nothing happened; retry the same read unchanged.
//
// Notes:
//   - ErrInterrupted is expected control flow, not a failure. The plain fill
//     helpers absorb it entirely; it only reaches a caller when a RetryPolicy
//     decides to stop retrying.
//   - An interrupt carries no data and no stream-position change: the read
//     that was interrupted simply did not occur.

// ErrInterrupted means “the read attempt was aborted before transferring any
// data and should be retried unchanged”.
// Linux analogy: EINTR — a signal arrived while the call was blocked.
// Next step: issue the identical read again.
var ErrInterrupted = errors.New("io: interrupted")
