package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/backend/internal/models"
)

func TestValidateApprove(t *testing.T) {
	target, errs := Validate("approved", "")
	assert.Empty(t, errs)
	assert.Equal(t, models.ApprovalApproved, target)
}

func TestValidateRejectRequiresFeedback(t *testing.T) {
	_, errs := Validate("rejected", "")
	require.Len(t, errs, 1)
	assert.Equal(t, "admin_feedback", errs[0].Param)
}

func TestValidateRejectWithFeedback(t *testing.T) {
	target, errs := Validate("rejected", "image does not match the venue")
	assert.Empty(t, errs)
	assert.Equal(t, models.ApprovalRejected, target)
}

func TestValidatePendingIsNotATarget(t *testing.T) {
	_, errs := Validate("pending", "")
	require.Len(t, errs, 1)
	assert.Equal(t, "approval_status", errs[0].Param)
}

func TestValidateUnknownStatus(t *testing.T) {
	_, errs := Validate("archived", "whatever")
	require.Len(t, errs, 1)
	assert.Equal(t, "approval_status", errs[0].Param)
}

func TestNormalizeCanonicalFields(t *testing.T) {
	req := Request{ApprovalStatus: "approved", AdminFeedback: "looks good"}
	status, feedback := req.Normalize()
	assert.Equal(t, "approved", status)
	assert.Equal(t, "looks good", feedback)
}

func TestNormalizeLegacyAliases(t *testing.T) {
	req := Request{Status: "rejected", ReviewNotes: "  missing venue permit  "}
	status, feedback := req.Normalize()
	assert.Equal(t, "rejected", status)
	assert.Equal(t, "missing venue permit", feedback)
}

func TestNormalizeCanonicalWinsOverAlias(t *testing.T) {
	req := Request{ApprovalStatus: "approved", Status: "rejected"}
	status, _ := req.Normalize()
	assert.Equal(t, "approved", status)
}

func TestNormalizeWhitespaceFeedbackIsEmpty(t *testing.T) {
	req := Request{ApprovalStatus: "rejected", AdminFeedback: "   "}
	_, feedback := req.Normalize()
	_, errs := Validate("rejected", feedback)
	require.Len(t, errs, 1)
	assert.Equal(t, "admin_feedback", errs[0].Param)
}
