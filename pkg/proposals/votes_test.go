package proposals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidemap/guidemap/pkg/proposals"
)

func TestTally(t *testing.T) {
	tests := []struct {
		name      string
		upvotes   int
		downvotes int
		want      int
	}{
		{"no votes", 0, 0, 0},
		{"only upvotes", 150, 0, 150},
		{"only downvotes", 0, 20, -20},
		{"mixed", 150, 20, 130},
		{"net negative", 5, 80, -75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, proposals.Tally(tt.upvotes, tt.downvotes))
		})
	}
}

func TestEligible(t *testing.T) {
	assert.True(t, proposals.Eligible(100, 100))
	assert.True(t, proposals.Eligible(130, 100))
	assert.False(t, proposals.Eligible(99, 100))
	assert.False(t, proposals.Eligible(-75, 100))
}

// Eligibility must be monotonic: more upvotes never hurt, more downvotes
// never help.
func TestEligibleMonotonic(t *testing.T) {
	const threshold = 100

	for up := 0; up <= 200; up += 25 {
		for down := 0; down <= 200; down += 25 {
			base := proposals.Eligible(proposals.Tally(up, down), threshold)

			moreUp := proposals.Eligible(proposals.Tally(up+1, down), threshold)
			if base && !moreUp {
				t.Fatalf("adding an upvote revoked eligibility at up=%d down=%d", up, down)
			}

			moreDown := proposals.Eligible(proposals.Tally(up, down+1), threshold)
			if !base && moreDown {
				t.Fatalf("adding a downvote granted eligibility at up=%d down=%d", up, down)
			}
		}
	}
}
