package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/pkg/campaign"
)

// ErrVersionConflict is returned by ReplaceCampaign when the stored record
// has moved past the version the replacement was computed from. Callers
// reload and retry or surface the conflict.
var ErrVersionConflict = errors.New("campaign version conflict")

// Storage persists campaign records. A record is written only as a whole
// value; there are no partial updates at this layer.
type Storage interface {
	// CreateCampaign stores a new record at version 1.
	CreateCampaign(ctx context.Context, rec *campaign.Record) error

	// GetCampaign loads a record. Missing records return (nil, nil).
	GetCampaign(ctx context.Context, id uuid.UUID) (*campaign.Record, error)

	// ReplaceCampaign swaps the stored record for rec if the stored version
	// still matches rec.Version, then bumps the version. Returns
	// ErrVersionConflict when another writer got there first.
	ReplaceCampaign(ctx context.Context, rec *campaign.Record) error

	// DeleteCampaign removes a record. Deleting a missing record is not an
	// error.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error

	// ListCampaigns returns the ids of all stored campaigns.
	ListCampaigns(ctx context.Context) ([]uuid.UUID, error)

	Ping(ctx context.Context) error
	Close() error
}
