package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApprovalStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		got, err := ParseApprovalStatus(s)
		require.NoError(t, err)
		assert.Equal(t, ApprovalStatus(s), got)
	}
	_, err := ParseApprovalStatus("archived")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("music")
	require.NoError(t, err)
	assert.Equal(t, CategoryMusic, got)
	_, err = ParseCategory("karaoke")
	assert.Error(t, err)
}

func TestVisibleRequiresApprovedAndPublished(t *testing.T) {
	e := Event{ApprovalStatus: ApprovalApproved, Published: true}
	assert.True(t, e.Visible())

	e.Published = false
	assert.False(t, e.Visible())

	e = Event{ApprovalStatus: ApprovalPending, Published: true}
	assert.False(t, e.Visible())

	e = Event{ApprovalStatus: ApprovalRejected, Published: true}
	assert.False(t, e.Visible())
}
