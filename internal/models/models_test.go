package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to under review", StatusPending, StatusUnderReview, true},
		{"under review back to pending", StatusUnderReview, StatusPending, true},
		{"under review to approved", StatusUnderReview, StatusApproved, true},
		{"under review to rejected", StatusUnderReview, StatusRejected, true},
		{"pending straight to approved", StatusPending, StatusApproved, false},
		{"pending straight to rejected", StatusPending, StatusRejected, false},
		{"approved is terminal", StatusApproved, StatusUnderReview, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"no self transition from pending", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusUnderReview, StatusApproved, StatusRejected} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("SIGNED"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("pending"))
}

func TestAllModelsIncludesEveryTable(t *testing.T) {
	all := AllModels()
	assert.Len(t, all, 6)
}
