package response

import (
	"time"

	"home-fixture/internal/data/entity"
)

type CustomerProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	City      *string   `json:"city,omitempty"`
	Pincode   *string   `json:"pincode,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ProfileToResponse(p *entity.UserProfile) CustomerProfileResponse {
	return CustomerProfileResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		FullName:  p.FullName,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		Pincode:   p.Pincode,
		UpdatedAt: p.UpdatedAt,
	}
}

func NotificationsToResponse(items []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{
			ID:        n.ID.String(),
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
