package notification

import (
	"fmt"

	"decor/constants"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// StatusMessageBuilder dựng tin nhắn thông báo đổi trạng thái đơn
type StatusMessageBuilder struct {
	bookingID uint
	status    constants.BookingStatus
}

func NewStatusMessageBuilder(bookingID uint, status constants.BookingStatus) *StatusMessageBuilder {
	return &StatusMessageBuilder{
		bookingID: bookingID,
		status:    status,
	}
}

func (b *StatusMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn #%d chuyển sang trạng thái %s (%s).", b.bookingID, b.status.Name(), b.status.Stage())
}
