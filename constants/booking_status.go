package constants

// BookingStatus là trạng thái của đơn đặt thi công trang trí.
// Backend lưu trạng thái dưới dạng số, client chỉ hiển thị.
type BookingStatus int

const (
	BookingStatusPending             BookingStatus = 0  // Chờ xử lý
	BookingStatusPlanning            BookingStatus = 1  // Lên kế hoạch khảo sát
	BookingStatusQuoting             BookingStatus = 2  // Báo giá
	BookingStatusContracting         BookingStatus = 3  // Soạn hợp đồng
	BookingStatusConfirm             BookingStatus = 4  // Chờ đặt cọc
	BookingStatusDepositPaid         BookingStatus = 5  // Đã đặt cọc
	BookingStatusPreparing           BookingStatus = 6  // Chuẩn bị vật tư
	BookingStatusInTransit           BookingStatus = 7  // Đang vận chuyển
	BookingStatusProgressing         BookingStatus = 8  // Đang thi công
	BookingStatusConstructionPayment BookingStatus = 9  // Thanh toán thi công
	BookingStatusCompleted           BookingStatus = 10 // Hoàn thành
	BookingStatusPendingCancellation BookingStatus = 11 // Chờ duyệt hủy
	BookingStatusCanceled            BookingStatus = 12 // Đã hủy
	BookingStatusRejected            BookingStatus = 13 // Bị từ chối
)

// BookingStatusUnknown dùng cho mã trạng thái ngoài bảng.
// Mọi hàm dẫn xuất đều trả về giá trị mặc định thay vì panic.
const BookingStatusUnknown BookingStatus = -1

// Các nhóm trạng thái dùng cho tab lọc trên app
const (
	CategoryInitial      = "initial"
	CategoryAgreement    = "agreement"
	CategoryConstruction = "construction"
	CategoryCompleted    = "completed"
	CategoryCancelled    = "cancelled"
	CategoryUnknown      = "unknown"
)

// Các stage dùng cho thanh tiến trình trên app.
// Khác với category: InTransit thuộc Preparation Stage,
// ConstructionPayment thuộc Construction Stage.
const (
	StageInitial      = "Initial Stage"
	StageAgreement    = "Agreement Stage"
	StagePreparation  = "Preparation Stage"
	StageConstruction = "Construction Stage"
	StageFinal        = "Final Stage"
	StageCancelled    = "Cancelled"
)

type bookingStatusInfo struct {
	name     string
	category string
	color    string
	icon     string
	stage    string
}

var bookingStatusTable = map[BookingStatus]bookingStatusInfo{
	BookingStatusPending:             {"Pending", CategoryInitial, "#ff9500", "time", StageInitial},
	BookingStatusPlanning:            {"Planning", CategoryInitial, "#007aff", "calendar", StageInitial},
	BookingStatusQuoting:             {"Quoting", CategoryAgreement, "#5856d6", "cash", StageAgreement},
	BookingStatusContracting:         {"Contracting", CategoryAgreement, "#007aff", "document-text", StageAgreement},
	BookingStatusConfirm:             {"Confirm", CategoryAgreement, "#5856d6", "checkmark-circle", StageAgreement},
	BookingStatusDepositPaid:         {"DepositPaid", CategoryConstruction, "#5ac8fa", "wallet", StagePreparation},
	BookingStatusPreparing:           {"Preparing", CategoryConstruction, "#34c759", "construct", StagePreparation},
	BookingStatusInTransit:           {"InTransit", CategoryConstruction, "#34c759", "car", StagePreparation},
	BookingStatusProgressing:         {"Progressing", CategoryConstruction, "#34c759", "hammer", StageConstruction},
	BookingStatusConstructionPayment: {"ConstructionPayment", CategoryConstruction, "#5ac8fa", "cash", StageConstruction},
	BookingStatusCompleted:           {"Completed", CategoryCompleted, "#4caf50", "checkmark-done-circle", StageFinal},
	BookingStatusPendingCancellation: {"PendingCancellation", CategoryCancelled, "#ff9500", "hourglass", StageCancelled},
	BookingStatusCanceled:            {"Canceled", CategoryCancelled, "#ff3b30", "close-circle", StageCancelled},
	BookingStatusRejected:            {"Rejected", CategoryCancelled, "#ff3b30", "close-circle", StageCancelled},
}

// Giá trị fallback cho mã trạng thái ngoài bảng
var unknownStatusInfo = bookingStatusInfo{
	name:     "Unknown",
	category: CategoryUnknown,
	color:    "#8e8e93",
	icon:     "help-circle",
	stage:    "",
}

func (s BookingStatus) info() bookingStatusInfo {
	if info, ok := bookingStatusTable[s]; ok {
		return info
	}
	return unknownStatusInfo
}

// Name trả về tên trạng thái, "Unknown" nếu mã không hợp lệ
func (s BookingStatus) Name() string {
	return s.info().name
}

// Category trả về nhóm trạng thái dùng cho tab lọc
func (s BookingStatus) Category() string {
	return s.info().category
}

// Color trả về màu hiển thị badge trạng thái
func (s BookingStatus) Color() string {
	return s.info().color
}

// Icon trả về tên icon hiển thị trạng thái
func (s BookingStatus) Icon() string {
	return s.info().icon
}

// Stage trả về stage hiển thị trên thanh tiến trình,
// chuỗi rỗng nếu mã không hợp lệ
func (s BookingStatus) Stage() string {
	return s.info().stage
}

// IsValid kiểm tra mã trạng thái có nằm trong bảng không
func (s BookingStatus) IsValid() bool {
	_, ok := bookingStatusTable[s]
	return ok
}

// CanBeCancelled cho biết khách có được gửi yêu cầu hủy không.
// Chỉ cho hủy trước khi ký hợp đồng xong (Pending -> Contracting).
func (s BookingStatus) CanBeCancelled() bool {
	switch s {
	case BookingStatusPending, BookingStatusPlanning, BookingStatusQuoting, BookingStatusContracting:
		return true
	}
	return false
}

// NeedsConfirmation cho biết đơn đang chờ khách xác nhận hợp đồng
func (s BookingStatus) NeedsConfirmation() bool {
	return s == BookingStatusContracting
}

// NeedsDeposit cho biết đơn đang chờ khách đặt cọc
func (s BookingStatus) NeedsDeposit() bool {
	return s == BookingStatusConfirm
}

// BookingStatusFromName tra mã trạng thái từ tên (phân biệt hoa thường).
// Trả về BookingStatusUnknown nếu tên không khớp.
func BookingStatusFromName(name string) BookingStatus {
	for status, info := range bookingStatusTable {
		if info.name == name {
			return status
		}
	}
	return BookingStatusUnknown
}

// AllBookingStatuses trả về danh sách 14 trạng thái theo thứ tự mã
func AllBookingStatuses() []BookingStatus {
	statuses := make([]BookingStatus, 0, len(bookingStatusTable))
	for i := BookingStatusPending; i <= BookingStatusRejected; i++ {
		statuses = append(statuses, i)
	}
	return statuses
}
