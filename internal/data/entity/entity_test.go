package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   BookingStatus
		wantOK bool
	}{
		{"completed", BookingStatusCompleted, true},
		{"Confirmed", BookingStatusConfirmed, true},
		{" CANCELLED ", BookingStatusCancelled, true},
		{"PENDING", BookingStatusPending, true},
		{"done", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseBookingStatus(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfessionalInCategory(t *testing.T) {
	categoryID := uuid.New()

	pro := &Professional{CategoryID: &categoryID}
	assert.True(t, pro.InCategory(categoryID))
	assert.False(t, pro.InCategory(uuid.New()))

	assert.False(t, (&Professional{}).InCategory(categoryID))
}
