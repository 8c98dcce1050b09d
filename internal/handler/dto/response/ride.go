package response

import (
	"time"

	"ride-together/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	OwnerName  string    `json:"ownerName,omitempty"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TrailType  string    `json:"trailType"`
	TrailLabel string    `json:"trailLabel"`
	Visibility string    `json:"visibility"`
	Badge      string    `json:"badge"`
	IsPast     bool      `json:"isPast"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PublicRideResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	OwnerName  string    `json:"ownerName"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TrailType  string    `json:"trailType"`
	TrailLabel string    `json:"trailLabel"`
	Visibility string    `json:"visibility"`
}

type ConfirmedRideResponse struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availabilityId"`
	Role           string    `json:"role"`
	PartnerID      uuid.UUID `json:"partnerId"`
	PartnerName    string    `json:"partnerName"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	TrailType      string    `json:"trailType"`
	TrailLabel     string    `json:"trailLabel"`
	ContactEmail   string    `json:"contactEmail,omitempty"`
	ContactPhone   string    `json:"contactPhone,omitempty"`
}

func FromSlotView(v *queries.SlotView) (*SlotResponse, error) {
	return copyOne[SlotResponse](v)
}

func FromSlotViews(vs []*queries.SlotView) ([]SlotResponse, error) {
	return copyList[SlotResponse](vs)
}

func FromPublicRides(vs []*queries.PublicRideView) ([]PublicRideResponse, error) {
	return copyList[PublicRideResponse](vs)
}

func FromConfirmedRides(vs []*queries.ConfirmedRideView) ([]ConfirmedRideResponse, error) {
	return copyList[ConfirmedRideResponse](vs)
}
