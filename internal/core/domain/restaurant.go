package domain

import (
	"errors"
	"time"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")
var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

// Category is a flat, globally shared tag used both for labelling
// restaurants and as a filter dimension.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"category"`
}

// Restaurant is a read-only snapshot of a backend listing. The backend owns
// the record; the client never mutates a snapshot in place.
type Restaurant struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url"`
	OwnerID     ID         `json:"owner_id"`
	Categories  []Category `json:"categories"`
}

// OwnedBy reports whether the restaurant belongs to the given identity.
// Ids from different endpoints may arrive as number or string; ID already
// normalizes both sides to the same representation, so plain equality holds.
func (r Restaurant) OwnedBy(identity *Identity) bool {
	return identity != nil && !r.OwnerID.IsZero() && r.OwnerID == identity.ID
}

// Review is append-mostly from the client's point of view: created and
// deleted, never updated in place.
type Review struct {
	ID           ID        `json:"id"`
	RestaurantID ID        `json:"restaurant_id"`
	UserID       ID        `json:"user_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Favorite is the backend's user/restaurant relation; the client reduces a
// fetched list of these to a set of restaurant ids.
type Favorite struct {
	UserID       ID `json:"user_id"`
	RestaurantID ID `json:"restaurant_id"`
}

// User is the public profile shape returned by the users endpoint.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Notification is a backend-owned review notification for an owner
// identity. The read flag is mutated locally and optimistically only.
type Notification struct {
	ID           ID        `json:"id"`
	Message      string    `json:"message"`
	RestaurantID ID        `json:"restaurant_id"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}
