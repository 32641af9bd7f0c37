// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx

import (
	"errors"
	"syscall"
)

// InterruptReader returns a Reader that reads from r and reclassifies
// OS-level interruption as ErrInterrupted.
//
// A read that fails with syscall.EINTR (including wrapped forms, e.g. the
// *fs.PathError an os.File produces when a signal lands mid-read) is
// reported as ErrInterrupted, so the fill helpers retry it transparently.
// Bytes delivered alongside the interrupt are passed through unchanged
// before the reclassified error. All other results are returned as-is.
func InterruptReader(r Reader) Reader {
	return interruptReader{r: r}
}

type interruptReader struct {
	r Reader
}

func (ir interruptReader) Read(p []byte) (n int, err error) {
	n, err = ir.r.Read(p)
	if err != nil && errors.Is(err, syscall.EINTR) {
		return n, ErrInterrupted
	}
	return n, err
}
