package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMarkers(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		numExcerpts int
		wantValid   []int
		wantDropped int
	}{
		{
			name:        "no markers",
			answer:      "The law says nothing specific here.",
			numExcerpts: 3,
			wantValid:   nil,
			wantDropped: 0,
		},
		{
			name:        "single marker",
			answer:      "Article 21 guarantees this right [1].",
			numExcerpts: 3,
			wantValid:   []int{1},
			wantDropped: 0,
		},
		{
			name:        "first occurrence order with duplicates",
			answer:      "Per [2] and [1], and again [2].",
			numExcerpts: 3,
			wantValid:   []int{2, 1},
			wantDropped: 0,
		},
		{
			name:        "out of range markers are dropped",
			answer:      "As stated in [1] and [7].",
			numExcerpts: 3,
			wantValid:   []int{1},
			wantDropped: 1,
		},
		{
			name:        "zero is never a valid marker",
			answer:      "See [0] and [1].",
			numExcerpts: 3,
			wantValid:   []int{1},
			wantDropped: 1,
		},
		{
			name:        "all markers dangle when retrieval was empty",
			answer:      "According to [1] and [2].",
			numExcerpts: 0,
			wantValid:   nil,
			wantDropped: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, dropped := extractMarkers(tt.answer, tt.numExcerpts)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}
