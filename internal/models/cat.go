package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/geo"
)

// LocationTypePoint is the only GeoJSON geometry a cat location may have.
const LocationTypePoint = "Point"

// Location is a GeoJSON point. Coordinates are ordered longitude, latitude.
// swagger:model Location
type Location struct {
	// example: Point
	Type string `json:"type" validate:"eq=Point"`

	// example: [24.93545, 60.16952]
	Coordinates [2]float64 `json:"coordinates"`
}

// NewPoint builds a point location.
func NewPoint(lng, lat float64) *Location {
	return &Location{Type: LocationTypePoint, Coordinates: [2]float64{lng, lat}}
}

// Lng returns the longitude.
func (l *Location) Lng() float64 { return l.Coordinates[0] }

// Lat returns the latitude.
func (l *Location) Lat() float64 { return l.Coordinates[1] }

// CatDB represents a cat row joined with its owner's public fields
type CatDB struct {
	CatID         uuid.UUID  `db:"id"`              // Primary key
	CatName       string     `db:"cat_name"`        // Cat name
	Weight        *float64   `db:"weight"`          // Optional weight
	Filename      *string    `db:"filename"`        // Optional image reference
	Birthdate     *time.Time `db:"birthdate"`       // Optional birthdate
	LocationLng   *float64   `db:"location_lng"`    // Longitude, null when no location
	LocationLat   *float64   `db:"location_lat"`    // Latitude, null when no location
	OwnerID       uuid.UUID  `db:"owner_id"`        // Owning user
	OwnerUserName string     `db:"owner_user_name"` // Owner's user name
	OwnerEmail    string     `db:"owner_email"`     // Owner's email
	CreatedAt     time.Time  `db:"created_at"`      // Creation timestamp
	UpdatedAt     time.Time  `db:"updated_at"`      // Last update timestamp
}

// Location returns the stored point, or nil when the cat has none.
func (c *CatDB) Location() *Location {
	if c.LocationLng == nil || c.LocationLat == nil {
		return nil
	}
	return NewPoint(*c.LocationLng, *c.LocationLat)
}

// ToCat converts a row into its output representation.
func (c *CatDB) ToCat() *Cat {
	return &Cat{
		CatID:     c.CatID,
		CatName:   c.CatName,
		Weight:    c.Weight,
		Filename:  c.Filename,
		Birthdate: c.Birthdate,
		Location:  c.Location(),
		Owner: UserOutput{
			UserID:   c.OwnerID,
			UserName: c.OwnerUserName,
			Email:    c.OwnerEmail,
		},
	}
}

// Cat is the output representation of a cat with its owner resolved.
// swagger:model Cat
type Cat struct {
	CatID     uuid.UUID  `json:"_id"`
	CatName   string     `json:"cat_name"`
	Weight    *float64   `json:"weight,omitempty"`
	Filename  *string    `json:"filename,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Location  *Location  `json:"location,omitempty"`
	Owner     UserOutput `json:"owner"`
}

// CatInput carries the fields accepted when creating a cat.
// Owner is accepted but always replaced by the creating actor.
type CatInput struct {
	CatName   string
	Weight    *float64
	Filename  *string
	Birthdate *time.Time
	Location  *Location
	Owner     *uuid.UUID
}

// CatUpdate carries the fields of a cat update. Nil fields keep their stored value.
// Owner is honoured only for admins.
type CatUpdate struct {
	CatName   *string
	Weight    *float64
	Filename  *string
	Birthdate *time.Time
	Location  *Location
	Owner     *uuid.UUID
}

// CatRecord is the full set of writable cat columns.
type CatRecord struct {
	CatName   string
	Weight    *float64
	Filename  *string
	Birthdate *time.Time
	Location  *Location
	OwnerID   uuid.UUID
}

// Record returns the writable columns of a stored cat.
func (c *Cat) Record() CatRecord {
	return CatRecord{
		CatName:   c.CatName,
		Weight:    c.Weight,
		Filename:  c.Filename,
		Birthdate: c.Birthdate,
		Location:  c.Location,
		OwnerID:   c.Owner.UserID,
	}
}

// CatFilter narrows a cat query. Zero value matches every cat.
type CatFilter struct {
	OwnerID *uuid.UUID  // only cats of this owner
	Within  geo.Polygon // only cats located inside this polygon, boundary included
}
