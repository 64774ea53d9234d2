package dto

import "decor/constants"

// BookingStatusResponse là metadata hiển thị của một trạng thái đơn.
// App dùng bảng này để vẽ tab lọc, badge và thanh tiến trình.
type BookingStatusResponse struct {
	Code              int    `json:"code"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Color             string `json:"color"`
	Icon              string `json:"icon"`
	Stage             string `json:"stage"`
	CanBeCancelled    bool   `json:"canBeCancelled"`
	NeedsConfirmation bool   `json:"needsConfirmation"`
	NeedsDeposit      bool   `json:"needsDeposit"`
}

// ConvertToBookingStatusResponse dẫn xuất metadata hiển thị từ mã trạng thái
func ConvertToBookingStatusResponse(status constants.BookingStatus) BookingStatusResponse {
	return BookingStatusResponse{
		Code:              int(status),
		Name:              status.Name(),
		Category:          status.Category(),
		Color:             status.Color(),
		Icon:              status.Icon(),
		Stage:             status.Stage(),
		CanBeCancelled:    status.CanBeCancelled(),
		NeedsConfirmation: status.NeedsConfirmation(),
		NeedsDeposit:      status.NeedsDeposit(),
	}
}

// progressStages là thứ tự các stage trên thanh tiến trình
var progressStages = []constants.BookingStatus{
	constants.BookingStatusPending,     // Initial Stage
	constants.BookingStatusQuoting,     // Agreement Stage
	constants.BookingStatusDepositPaid, // Preparation Stage
	constants.BookingStatusProgressing, // Construction Stage
	constants.BookingStatusCompleted,   // Final Stage
}

// BuildBookingTimeline dựng thanh tiến trình cho một trạng thái đơn.
// Đơn đã hủy hiển thị thêm một bước Cancelled ở cuối.
func BuildBookingTimeline(status constants.BookingStatus) []BookingTimelineEntry {
	currentStage := status.Stage()

	reachedIndex := -1
	for i, stage := range progressStages {
		if stage.Stage() == currentStage {
			reachedIndex = i
			break
		}
	}

	entries := make([]BookingTimelineEntry, 0, len(progressStages)+1)
	for i, stage := range progressStages {
		entries = append(entries, BookingTimelineEntry{
			Stage:   stage.Stage(),
			Color:   stage.Color(),
			Reached: reachedIndex >= i,
			Current: reachedIndex == i,
		})
	}

	if currentStage == constants.StageCancelled {
		entries = append(entries, BookingTimelineEntry{
			Stage:   constants.StageCancelled,
			Color:   status.Color(),
			Reached: true,
			Current: true,
		})
	}

	return entries
}

// AllBookingStatusResponses trả về bảng metadata của cả 14 trạng thái
func AllBookingStatusResponses() []BookingStatusResponse {
	statuses := constants.AllBookingStatuses()
	responses := make([]BookingStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		responses = append(responses, ConvertToBookingStatusResponse(status))
	}
	return responses
}
