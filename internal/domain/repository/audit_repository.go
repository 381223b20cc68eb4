package repository

import (
	"context"
	"time"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when no matching audit record exists.
var ErrRecordNotFound = errors.New("audit record not found")

// AuditRepository defines the interface over the append-only check-in
// trail. Records are written exactly once per check-in event and never
// updated or deleted.
type AuditRepository interface {
	// AppendRecord writes a new historic record.
	AppendRecord(ctx context.Context, record *entity.HistoricRecord) error

	// LatestRecord retrieves the most recent record for a device at a
	// location, or ErrRecordNotFound when none exists. Used to detect an
	// already-written audit record when resuming an interrupted check-in.
	LatestRecord(ctx context.Context, deviceID, locationID uuid.UUID) (*entity.HistoricRecord, error)

	// ListRecordsForDevice retrieves a device's check-in history, newest first.
	ListRecordsForDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.HistoricRecord, error)

	// LocationIDsWithRecordsSince returns the IDs of locations referenced
	// by at least one record written at or after the given time. Drives
	// the rolling historic reservation listing.
	LocationIDsWithRecordsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}
