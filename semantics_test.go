// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readx_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/readx"
)

// -----------------------------------------------------------------------------
// Outcome and ClassifyFill tests
// -----------------------------------------------------------------------------

func TestSemantics_ClassifyAndPredicates(t *testing.T) {
	sentinelErr := errors.New("sentinelErr")
	cases := []struct {
		name            string
		filled          bool
		err             error
		wantInterrupted bool
		wantTruncated   bool
		wantNonFailure  bool
		wantOutcome     readx.Outcome
		wantOutcomeText string
	}{
		{"filled", true, nil, false, false, true, readx.OutcomeFilled, "Filled"},
		{"empty", false, nil, false, false, true, readx.OutcomeEmpty, "Empty"},
		{"truncated", false, readx.ErrUnexpectedEOF, false, true, false, readx.OutcomeTruncated, "Truncated"},
		{"interrupted", false, readx.ErrInterrupted, true, false, true, readx.OutcomeInterrupted, "Interrupted"},
		{"sentinelErr", false, sentinelErr, false, false, false, readx.OutcomeFailure, "Failure"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := readx.IsInterrupted(tc.err); got != tc.wantInterrupted {
				t.Fatalf("IsInterrupted=%v", got)
			}
			if got := readx.IsTruncated(tc.err); got != tc.wantTruncated {
				t.Fatalf("IsTruncated=%v", got)
			}
			if got := readx.IsNonFailure(tc.err); got != tc.wantNonFailure {
				t.Fatalf("IsNonFailure=%v", got)
			}
			got := readx.ClassifyFill(tc.filled, tc.err)
			if got != tc.wantOutcome {
				t.Fatalf("ClassifyFill=%v want %v", got, tc.wantOutcome)
			}
			if got.String() != tc.wantOutcomeText {
				t.Fatalf("String=%q want %q", got.String(), tc.wantOutcomeText)
			}
		})
	}
}

func TestSemantics_WrappedErrorsQualify(t *testing.T) {
	wrappedInt := fmt.Errorf("outer: %w", readx.ErrInterrupted)
	if !readx.IsInterrupted(wrappedInt) {
		t.Fatalf("wrapped interrupt not recognized")
	}
	if readx.ClassifyFill(false, wrappedInt) != readx.OutcomeInterrupted {
		t.Fatalf("wrapped interrupt misclassified")
	}

	wrappedTrunc := fmt.Errorf("record 7: %w", readx.ErrUnexpectedEOF)
	if !readx.IsTruncated(wrappedTrunc) {
		t.Fatalf("wrapped truncation not recognized")
	}
	if readx.ClassifyFill(false, wrappedTrunc) != readx.OutcomeTruncated {
		t.Fatalf("wrapped truncation misclassified")
	}
}

func TestSemantics_UnknownOutcomeString(t *testing.T) {
	if got := readx.Outcome(99).String(); got != "Failure" {
		t.Fatalf("got %q", got)
	}
}
