package listing

import (
	"time"

	"github.com/google/uuid"
)

// Listing is immutable after creation except for deletion by its owning host.
type Listing struct {
	id          uuid.UUID
	hostID      uuid.UUID
	title       Title
	city        City
	nightlyRate NightlyRate
	description Description
	images      []string // ordered, self-contained data URIs
	createdAt   time.Time
}

func NewListing(hostID uuid.UUID, title Title, city City, rate NightlyRate, desc Description, images []string, now time.Time) (*Listing, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if len(images) > MaxImages {
		return nil, ErrTooManyImages
	}
	return &Listing{
		id:          uuid.New(),
		hostID:      hostID,
		title:       title,
		city:        city,
		nightlyRate: rate,
		description: desc,
		images:      images,
		createdAt:   now,
	}, nil
}

func ReconstructListing(id, hostID uuid.UUID, title Title, city City, rate NightlyRate, desc Description, images []string, createdAt time.Time) *Listing {
	return &Listing{
		id:          id,
		hostID:      hostID,
		title:       title,
		city:        city,
		nightlyRate: rate,
		description: desc,
		images:      images,
		createdAt:   createdAt,
	}
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) HostID() uuid.UUID        { return l.hostID }
func (l *Listing) Title() Title             { return l.title }
func (l *Listing) City() City               { return l.city }
func (l *Listing) NightlyRate() NightlyRate { return l.nightlyRate }
func (l *Listing) Description() Description { return l.description }
func (l *Listing) Images() []string         { return l.images }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }

func (l *Listing) IsOwnedBy(hostID uuid.UUID) bool { return l.hostID == hostID }
