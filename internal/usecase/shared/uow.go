package shared

import (
	"context"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/domain/notification"
	"ride-together/internal/domain/user"
	sqlc "ride-together/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Friendships() FriendshipRepository
	Events() EventPublisher
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Request, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, slot *availability.Slot) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	// CreateIfAbsent inserts unless a request for the same (slot, requester)
	// exists. created is false when nothing was inserted.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, req *booking.Request) (id uuid.UUID, created bool, err error)
	// UpdateStatus persists a decision only while the stored row is still pending.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, req *booking.Request) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDueJobs leases due jobs until leaseUntil. A job that is neither
	// marked nor rescheduled before then is claimed again.
	ClaimDueJobs(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	MarkJobSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	RescheduleJob(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status JobStatus, lastError string, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type FriendshipRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, f user.Friendship) (created bool, err error)
	Remove(ctx context.Context, tx sqlc.DBTX, a, b uuid.UUID) (removed bool, err error)
	AddRequest(ctx context.Context, tx sqlc.DBTX, req user.FriendRequest) (created bool, err error)
	RemoveRequest(ctx context.Context, tx sqlc.DBTX, from, to uuid.UUID) (removed bool, err error)
}

// EventPublisher emits change events. Events published inside a
// transaction are delivered only if it commits.
type EventPublisher interface {
	Publish(ctx context.Context, tx sqlc.DBTX, ev ChangeEvent) error
}
