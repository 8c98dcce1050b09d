package request

import (
	"ride-together/internal/domain/booking"
)

// JoinRequest is the request-to-join dialog. An empty body sends the
// canned message without sharing contact details.
type JoinRequest struct {
	Message    string `json:"message" binding:"max=500"`
	ShareEmail bool   `json:"shareEmail"`
	SharePhone bool   `json:"sharePhone"`
	Phone      string `json:"phone" binding:"required_if=SharePhone true,max=32"`
}

func (r *JoinRequest) ToDomain() (booking.Draft, error) {
	return booking.NewDraft(r.Message, booking.ContactShare{
		Email:       r.ShareEmail,
		Phone:       r.SharePhone,
		PhoneNumber: r.Phone,
	})
}
