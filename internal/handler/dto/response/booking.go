package response

import (
	"time"

	"ride-together/internal/usecase/queries"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type PendingRequestResponse struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availabilityId"`
	RequesterID    uuid.UUID `json:"requesterId"`
	RequesterName  string    `json:"requesterName"`
	Message        string    `json:"message"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	TrailType      string    `json:"trailType"`
	TrailLabel     string    `json:"trailLabel"`
	ContactEmail   string    `json:"contactEmail,omitempty"`
	ContactPhone   string    `json:"contactPhone,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availabilityId"`
	OwnerID        uuid.UUID `json:"ownerId"`
	RequesterID    uuid.UUID `json:"requesterId"`
	RequesterName  string    `json:"requesterName"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	TrailType      string    `json:"trailType"`
	ContactEmail   string    `json:"contactEmail,omitempty"`
	ContactPhone   string    `json:"contactPhone,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type NotificationResponse struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	FromUserID *uuid.UUID `json:"fromUserId,omitempty"`
	BookingID  *uuid.UUID `json:"bookingId,omitempty"`
	Read       bool       `json:"read"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ChangeResponse is one frame on the booking change stream.
type ChangeResponse struct {
	Collection string    `json:"collection"`
	Kind       string    `json:"kind"`
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func FromPendingRequests(vs []*queries.PendingRequestView) ([]PendingRequestResponse, error) {
	return copyList[PendingRequestResponse](vs)
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return copyOne[BookingResponse](v)
}

func FromNotifications(vs []*queries.NotificationView) ([]NotificationResponse, error) {
	return copyList[NotificationResponse](vs)
}

func FromChangeEvent(ev shared.ChangeEvent) ChangeResponse {
	return ChangeResponse{
		Collection: string(ev.Collection),
		Kind:       ev.Kind,
		ID:         ev.ID,
		Status:     ev.Status,
		OccurredAt: ev.OccurredAt,
	}
}
