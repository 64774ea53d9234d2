package notification

import (
	"testing"

	"decor/constants"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessageBuilder(t *testing.T) {
	msg := NewStatusMessageBuilder(42, constants.BookingStatusProgressing).Build()
	assert.Contains(t, msg, "#42")
	assert.Contains(t, msg, "Progressing")
	assert.Contains(t, msg, "Construction Stage")
}

func TestStatusMessageBuilderUnknownStatus(t *testing.T) {
	// Mã ngoài bảng vẫn dựng được tin nhắn, không panic
	msg := NewStatusMessageBuilder(7, constants.BookingStatus(99)).Build()
	assert.Contains(t, msg, "Unknown")
}

func TestMelodyServiceNil(t *testing.T) {
	s := &MelodyService{}
	assert.Error(t, s.SendMessage("hello"))
}
