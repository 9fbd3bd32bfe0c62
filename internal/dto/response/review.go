package response

import (
	"time"

	"home-fixture/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ComplaintResponse struct {
	ID          string                 `json:"id"`
	BookingID   string                 `json:"booking_id"`
	Description string                 `json:"description"`
	Status      entity.ComplaintStatus `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

func ReviewToResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		BookingID: r.BookingID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func ComplaintToResponse(c *entity.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID.String(),
		BookingID:   c.BookingID.String(),
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

func ComplaintsToResponse(items []*entity.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ComplaintToResponse(item))
	}
	return out
}
