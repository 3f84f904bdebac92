package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is write-once: no edit or delete. Repeat reviews by the same author
// for the same listing are permitted, matching the source behavior.
type Review struct {
	id         uuid.UUID
	listingID  uuid.UUID
	authorID   uuid.UUID
	authorName string
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

func NewReview(id, listingID, authorID uuid.UUID, authorName string, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		listingID:  listingID,
		authorID:   authorID,
		authorName: authorName,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ListingID() uuid.UUID { return r.listingID }
func (r *Review) AuthorID() uuid.UUID  { return r.authorID }
func (r *Review) AuthorName() string   { return r.authorName }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
