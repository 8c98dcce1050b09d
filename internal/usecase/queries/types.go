package queries

import (
	"context"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/domain/notification"
	"ride-together/internal/domain/trail"
	"ride-together/internal/domain/user"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	FallbackOwnerName   = "Anonymous Rider"
	FallbackPartnerName = "Riding Partner"
)

// Read models (DTO for read side)
type SlotView struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name,omitempty"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	TrailType  string    `json:"trail_type"`
	TrailLabel string    `json:"trail_label"`
	Visibility string    `json:"visibility"`
	Badge      string    `json:"badge"`
	IsPast     bool      `json:"is_past"`
	CreatedAt  time.Time `json:"created_at"`
}

type PublicRideView struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	TrailType  string    `json:"trail_type"`
	TrailLabel string    `json:"trail_label"`
	Visibility string    `json:"visibility"`
}

type PendingRequestView struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availability_id"`
	RequesterID    uuid.UUID `json:"requester_id"`
	RequesterName  string    `json:"requester_name"`
	Message        string    `json:"message"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	TrailType      string    `json:"trail_type"`
	TrailLabel     string    `json:"trail_label"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConfirmedRideView struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availability_id"`
	Role           string    `json:"role"`
	PartnerID      uuid.UUID `json:"partner_id"`
	PartnerName    string    `json:"partner_name"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	TrailType      string    `json:"trail_type"`
	TrailLabel     string    `json:"trail_label"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availability_id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	RequesterID    uuid.UUID `json:"requester_id"`
	RequesterName  string    `json:"requester_name"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	TrailType      string    `json:"trail_type"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type NotificationView struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	FromUserID *uuid.UUID `json:"from_user_id,omitempty"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	Read       bool       `json:"read"`
	CreatedAt  time.Time  `json:"created_at"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type FriendView struct {
	UserID       uuid.UUID `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	FriendsSince time.Time `json:"friends_since"`
}

// FriendRequestView is an incoming request; UserID is the sender.
type FriendRequestView struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	RequestedAt time.Time `json:"requested_at"`
}

type TrailView struct {
	Name        string     `json:"name"`
	Coordinates [2]float64 `json:"coordinates"`
	Distance    string     `json:"distance"`
	Difficulty  string     `json:"difficulty"`
	Color       string     `json:"color"`
	Type        string     `json:"type,omitempty"`
	Elevation   string     `json:"elevation,omitempty"`
	Description string     `json:"description,omitempty"`
}

type MarkerView struct {
	Coordinates [2]float64        `json:"coordinates"`
	Label       string            `json:"label"`
	Metadata    map[string]string `json:"metadata"`
}

// Read-side ports. Implementations live in infra.

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*availability.Slot, error)
	FindIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	FindPublicFrom(ctx context.Context, from availability.RideDate) ([]*availability.Slot, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Request, error)
	FindPendingForSlots(ctx context.Context, slotIDs []uuid.UUID) ([]*booking.Request, error)
	FindAcceptedAsOwner(ctx context.Context, ownerID uuid.UUID, from availability.RideDate) ([]*booking.Request, error)
	FindAcceptedAsRequester(ctx context.Context, requesterID uuid.UUID, from availability.RideDate) ([]*booking.Request, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error)
}

type FriendReadStore interface {
	FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindFriends(ctx context.Context, userID uuid.UUID) ([]*FriendView, error)
	FindIncomingRequests(ctx context.Context, userID uuid.UUID) ([]*FriendRequestView, error)
}

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*notification.Notification, error)
}

// UserDirectory resolves the names riders show to each other. Ids with no
// resolvable name are absent from the result.
type UserDirectory interface {
	DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type TrailCatalog interface {
	Trails() []*trail.Trail
}

// RideCalendar renders confirmed rides as an iCalendar document.
type RideCalendar interface {
	Render(rides []*ConfirmedRideView, now time.Time) ([]byte, error)
}

// ChangeFeed is re-exported so handlers depend on queries only.
type ChangeFeed = shared.ChangeFeed
