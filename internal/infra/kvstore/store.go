// Package kvstore is the persistence collaborator: durable named collections
// with whole-document Load/Save semantics. Callers read an entire collection,
// filter or transform it in memory, and write the whole collection back;
// there are no partial updates, queries, or transactions.
package kvstore

import "context"

// Collection names. Each maps to one stored JSON document.
const (
	CollectionAccounts  = "accounts"
	CollectionListings  = "listings"
	CollectionBookings  = "bookings"
	CollectionReviews   = "reviews"
	CollectionFavorites = "favorites"
)

type Store interface {
	// Load decodes the named collection into dest. A collection that has
	// never been saved leaves dest at its zero value and returns nil.
	Load(ctx context.Context, name string, dest any) error
	// Save replaces the named collection atomically.
	Save(ctx context.Context, name string, value any) error
}
