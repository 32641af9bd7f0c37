// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx_test

import (
	"testing"
	"time"

	"code.hybscloud.com/readx"
)

func TestBackoff_ZeroValue(t *testing.T) {
	// Zero-value Backoff should be ready to use with defaults
	var b readx.Backoff

	if got := b.Block(); got != 1 {
		t.Errorf("Block() = %d, want 1", got)
	}
	if got := b.Duration(); got != readx.DefaultBackoffBase {
		t.Errorf("Duration() = %v, want %v", got, readx.DefaultBackoffBase)
	}
}

func TestBackoff_ZeroValueWait(t *testing.T) {
	var b readx.Backoff

	start := time.Now()
	b.Wait()
	elapsed := time.Since(start)

	// Allow generous tolerance for test stability (OS scheduling adds latency)
	minWait := readx.DefaultBackoffBase * 7 / 8 // -12.5% jitter
	maxWait := readx.DefaultBackoffBase * 10    // generous upper bound for CI/slow systems

	if elapsed < minWait || elapsed > maxWait {
		t.Errorf("Wait() elapsed = %v, expected between %v and %v", elapsed, minWait, maxWait)
	}

	// After the first Wait (block 1 has one iteration), block advances to 2
	if got := b.Block(); got != 2 {
		t.Errorf("After Wait(), Block() = %d, want 2", got)
	}
}

func TestBackoff_LinearProgression(t *testing.T) {
	var b readx.Backoff
	b.SetBase(time.Microsecond)
	b.SetMax(time.Second)

	// Block n performs n waits; after 1+2+3 waits the block is 4.
	for i := 0; i < 6; i++ {
		b.Wait()
	}
	if got := b.Block(); got != 4 {
		t.Errorf("Block() = %d, want 4", got)
	}
	if got := b.Duration(); got != 4*time.Microsecond {
		t.Errorf("Duration() = %v, want 4µs", got)
	}
}

func TestBackoff_DurationCapsAtMax(t *testing.T) {
	var b readx.Backoff
	b.SetBase(60 * time.Millisecond)
	b.SetMax(100 * time.Millisecond)

	// Zero-value block is 1: 60ms, under the cap.
	if got := b.Duration(); got != 60*time.Millisecond {
		t.Errorf("Duration() = %v, want 60ms", got)
	}

	// Force the progression into block 2; 120ms caps at 100ms.
	b.SetBase(time.Microsecond)
	b.Wait()
	b.SetBase(60 * time.Millisecond)
	if got := b.Duration(); got != 100*time.Millisecond {
		t.Errorf("Duration() = %v, want capped 100ms", got)
	}
}

func TestBackoff_Reset(t *testing.T) {
	var b readx.Backoff
	b.SetBase(time.Microsecond)
	b.SetMax(time.Second)

	for i := 0; i < 6; i++ {
		b.Wait()
	}
	b.Reset()

	if got := b.Block(); got != 1 {
		t.Errorf("Block() after Reset = %d, want 1", got)
	}
	if got := b.Duration(); got != time.Microsecond {
		t.Errorf("Duration() after Reset = %v, want base", got)
	}
}
