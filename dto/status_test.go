package dto

import (
	"testing"

	"decor/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBookingStatusResponse(t *testing.T) {
	resp := ConvertToBookingStatusResponse(constants.BookingStatusConfirm)
	assert.Equal(t, 4, resp.Code)
	assert.Equal(t, "Confirm", resp.Name)
	assert.Equal(t, constants.CategoryAgreement, resp.Category)
	assert.Equal(t, "#5856d6", resp.Color)
	assert.Equal(t, constants.StageAgreement, resp.Stage)
	assert.False(t, resp.CanBeCancelled)
	assert.False(t, resp.NeedsConfirmation)
	assert.True(t, resp.NeedsDeposit)
}

func TestConvertToBookingStatusResponseUnknown(t *testing.T) {
	resp := ConvertToBookingStatusResponse(constants.BookingStatus(999))
	assert.Equal(t, "Unknown", resp.Name)
	assert.Equal(t, constants.CategoryUnknown, resp.Category)
	assert.Equal(t, "#8e8e93", resp.Color)
	assert.Equal(t, "", resp.Stage)
	assert.False(t, resp.CanBeCancelled)
}

func TestAllBookingStatusResponses(t *testing.T) {
	responses := AllBookingStatusResponses()
	require.Len(t, responses, 14)
	assert.Equal(t, "Pending", responses[0].Name)
	assert.Equal(t, "Rejected", responses[13].Name)
}

func TestBuildBookingTimelineProgressing(t *testing.T) {
	entries := BuildBookingTimeline(constants.BookingStatusProgressing)
	require.Len(t, entries, 5)

	assert.Equal(t, constants.StageConstruction, entries[3].Stage)
	assert.True(t, entries[3].Current)
	for i := 0; i < 4; i++ {
		assert.True(t, entries[i].Reached, "stage %d phải được đánh dấu đã qua", i)
	}
	assert.False(t, entries[4].Reached)
}

func TestBuildBookingTimelineInTransit(t *testing.T) {
	// InTransit nằm ở Preparation Stage trên thanh tiến trình
	entries := BuildBookingTimeline(constants.BookingStatusInTransit)
	require.Len(t, entries, 5)
	assert.Equal(t, constants.StagePreparation, entries[2].Stage)
	assert.True(t, entries[2].Current)
	assert.False(t, entries[3].Reached)
}

func TestBuildBookingTimelineCancelled(t *testing.T) {
	entries := BuildBookingTimeline(constants.BookingStatusCanceled)
	require.Len(t, entries, 6)

	last := entries[5]
	assert.Equal(t, constants.StageCancelled, last.Stage)
	assert.True(t, last.Current)
	assert.Equal(t, "#ff3b30", last.Color)

	for i := 0; i < 5; i++ {
		assert.False(t, entries[i].Current)
	}
}

func TestBuildBookingTimelineUnknown(t *testing.T) {
	entries := BuildBookingTimeline(constants.BookingStatus(-5))
	require.Len(t, entries, 5)
	for _, entry := range entries {
		assert.False(t, entry.Reached)
		assert.False(t, entry.Current)
	}
}
