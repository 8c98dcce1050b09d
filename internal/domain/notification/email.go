package notification

import (
	"encoding/json"

	"github.com/google/uuid"
)

const (
	JobKindEmail        = "email"
	TopicBookingDecided = "booking_decided"
)

// EmailPayload is the outbox payload for a notification e-mail.
// The recipient address is resolved at delivery time.
type EmailPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
	RecipientID    uuid.UUID `json:"recipient_id"`
	BookingID      uuid.UUID `json:"booking_id"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
}

func NewEmailPayload(n *Notification) EmailPayload {
	subject := "Ride request update"
	switch n.Type() {
	case TypeBookingAccepted:
		subject = "Your ride request was accepted"
	case TypeBookingDeclined:
		subject = "Your ride request was declined"
	}
	return EmailPayload{
		NotificationID: n.ID(),
		RecipientID:    n.UserID(),
		BookingID:      n.BookingID(),
		Subject:        subject,
		Body:           n.Message(),
	}
}

func (p EmailPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func UnmarshalEmailPayload(data []byte) (EmailPayload, error) {
	var p EmailPayload
	err := json.Unmarshal(data, &p)
	return p, err
}
