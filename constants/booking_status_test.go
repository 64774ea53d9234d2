package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusNameRoundTrip(t *testing.T) {
	for code := 0; code <= 13; code++ {
		status := BookingStatus(code)
		name := status.Name()
		require.NotEqual(t, "Unknown", name, "mã %d phải có tên riêng", code)
		assert.Equal(t, status, BookingStatusFromName(name), "round-trip mã %d", code)
	}
}

func TestBookingStatusFromNameUnrecognized(t *testing.T) {
	assert.Equal(t, BookingStatusUnknown, BookingStatusFromName(""))
	assert.Equal(t, BookingStatusUnknown, BookingStatusFromName("pending"))
	assert.Equal(t, BookingStatusUnknown, BookingStatusFromName("PENDING"))
	assert.Equal(t, BookingStatusUnknown, BookingStatusFromName("Deposit Paid"))
	assert.Equal(t, BookingStatusUnknown, BookingStatusFromName("Unknown"))
}

func TestBookingStatusNames(t *testing.T) {
	expected := map[BookingStatus]string{
		BookingStatusPending:             "Pending",
		BookingStatusPlanning:            "Planning",
		BookingStatusQuoting:             "Quoting",
		BookingStatusContracting:         "Contracting",
		BookingStatusConfirm:             "Confirm",
		BookingStatusDepositPaid:         "DepositPaid",
		BookingStatusPreparing:           "Preparing",
		BookingStatusInTransit:           "InTransit",
		BookingStatusProgressing:         "Progressing",
		BookingStatusConstructionPayment: "ConstructionPayment",
		BookingStatusCompleted:           "Completed",
		BookingStatusPendingCancellation: "PendingCancellation",
		BookingStatusCanceled:            "Canceled",
		BookingStatusRejected:            "Rejected",
	}
	for status, name := range expected {
		assert.Equal(t, name, status.Name())
	}
}

func TestBookingStatusUnknownCodes(t *testing.T) {
	for _, code := range []int{-1, -100, 14, 99, 9999} {
		status := BookingStatus(code)
		assert.Equal(t, "Unknown", status.Name(), "mã %d", code)
		assert.Equal(t, CategoryUnknown, status.Category(), "mã %d", code)
		assert.Equal(t, "#8e8e93", status.Color(), "mã %d", code)
		assert.Equal(t, "help-circle", status.Icon(), "mã %d", code)
		assert.Equal(t, "", status.Stage(), "mã %d", code)
		assert.False(t, status.CanBeCancelled(), "mã %d", code)
		assert.False(t, status.NeedsConfirmation(), "mã %d", code)
		assert.False(t, status.NeedsDeposit(), "mã %d", code)
		assert.False(t, status.IsValid(), "mã %d", code)
	}
}

func TestBookingStatusCategoryPartition(t *testing.T) {
	expected := map[string][]BookingStatus{
		CategoryInitial:      {BookingStatusPending, BookingStatusPlanning},
		CategoryAgreement:    {BookingStatusQuoting, BookingStatusContracting, BookingStatusConfirm},
		CategoryConstruction: {BookingStatusDepositPaid, BookingStatusPreparing, BookingStatusInTransit, BookingStatusProgressing, BookingStatusConstructionPayment},
		CategoryCompleted:    {BookingStatusCompleted},
		CategoryCancelled:    {BookingStatusPendingCancellation, BookingStatusCanceled, BookingStatusRejected},
	}

	seen := map[BookingStatus]string{}
	for category, statuses := range expected {
		for _, status := range statuses {
			assert.Equal(t, category, status.Category())
			_, dup := seen[status]
			require.False(t, dup, "trạng thái %s nằm trong hai nhóm", status.Name())
			seen[status] = category
		}
	}
	// 14 trạng thái phủ đúng một lần
	assert.Len(t, seen, 14)
}

func TestBookingStatusStages(t *testing.T) {
	expected := map[string][]BookingStatus{
		StageInitial:      {BookingStatusPending, BookingStatusPlanning},
		StageAgreement:    {BookingStatusQuoting, BookingStatusContracting, BookingStatusConfirm},
		StagePreparation:  {BookingStatusDepositPaid, BookingStatusPreparing, BookingStatusInTransit},
		StageConstruction: {BookingStatusProgressing, BookingStatusConstructionPayment},
		StageFinal:        {BookingStatusCompleted},
		StageCancelled:    {BookingStatusPendingCancellation, BookingStatusCanceled, BookingStatusRejected},
	}
	total := 0
	for stage, statuses := range expected {
		for _, status := range statuses {
			assert.Equal(t, stage, status.Stage(), "trạng thái %s", status.Name())
			total++
		}
	}
	assert.Equal(t, 14, total)
}

func TestBookingStatusStageDiffersFromCategory(t *testing.T) {
	// InTransit: nhóm construction nhưng stage Preparation
	assert.Equal(t, CategoryConstruction, BookingStatusInTransit.Category())
	assert.Equal(t, StagePreparation, BookingStatusInTransit.Stage())

	// ConstructionPayment: nhóm construction và stage Construction
	assert.Equal(t, CategoryConstruction, BookingStatusConstructionPayment.Category())
	assert.Equal(t, StageConstruction, BookingStatusConstructionPayment.Stage())
}

func TestBookingStatusCanBeCancelled(t *testing.T) {
	cancellable := map[BookingStatus]bool{
		BookingStatusPending:     true,
		BookingStatusPlanning:    true,
		BookingStatusQuoting:     true,
		BookingStatusContracting: true,
	}
	for _, status := range AllBookingStatuses() {
		assert.Equal(t, cancellable[status], status.CanBeCancelled(), "trạng thái %s", status.Name())
	}
	assert.True(t, BookingStatusPending.CanBeCancelled())
	assert.False(t, BookingStatusConfirm.CanBeCancelled())
	assert.False(t, BookingStatusCompleted.CanBeCancelled())
}

func TestBookingStatusNeedsConfirmation(t *testing.T) {
	for _, status := range AllBookingStatuses() {
		assert.Equal(t, status == BookingStatusContracting, status.NeedsConfirmation(), "trạng thái %s", status.Name())
	}
}

func TestBookingStatusNeedsDeposit(t *testing.T) {
	for _, status := range AllBookingStatuses() {
		assert.Equal(t, status == BookingStatusConfirm, status.NeedsDeposit(), "trạng thái %s", status.Name())
	}
}

func TestBookingStatusColors(t *testing.T) {
	expected := map[BookingStatus]string{
		BookingStatusPending:             "#ff9500",
		BookingStatusPlanning:            "#007aff",
		BookingStatusQuoting:             "#5856d6",
		BookingStatusContracting:         "#007aff",
		BookingStatusConfirm:             "#5856d6",
		BookingStatusDepositPaid:         "#5ac8fa",
		BookingStatusPreparing:           "#34c759",
		BookingStatusInTransit:           "#34c759",
		BookingStatusProgressing:         "#34c759",
		BookingStatusConstructionPayment: "#5ac8fa",
		BookingStatusCompleted:           "#4caf50",
		BookingStatusPendingCancellation: "#ff9500",
		BookingStatusCanceled:            "#ff3b30",
		BookingStatusRejected:            "#ff3b30",
	}
	for status, color := range expected {
		assert.Equal(t, color, status.Color())
	}
}

func TestBookingStatusProgressingExample(t *testing.T) {
	status := BookingStatus(8)
	assert.Equal(t, "Progressing", status.Name())
	assert.Equal(t, CategoryConstruction, status.Category())
	assert.Equal(t, "#34c759", status.Color())
	assert.Equal(t, StageConstruction, status.Stage())
	assert.Equal(t, "hammer", status.Icon())
	assert.False(t, status.CanBeCancelled())
}

func TestBookingStatusCanceledExample(t *testing.T) {
	status := BookingStatus(12)
	assert.Equal(t, "Canceled", status.Name())
	assert.Equal(t, CategoryCancelled, status.Category())
	assert.Equal(t, "#ff3b30", status.Color())
	assert.Equal(t, StageCancelled, status.Stage())
}

func TestAllBookingStatusesOrder(t *testing.T) {
	statuses := AllBookingStatuses()
	require.Len(t, statuses, 14)
	for i, status := range statuses {
		assert.Equal(t, BookingStatus(i), status)
	}
}
