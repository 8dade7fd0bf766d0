// Package locations serves the read-only surf-spot catalog backing the
// mobile client's map view.
package locations

import (
	"database/sql"
	"encoding/json"
	"errors"
	"math"
)

// ErrDatabase indicates a catalog query failure.
var ErrDatabase = errors.New("database error")

// Coordinates is a decoded, rounded coordinate pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one row of the catalog, in the shape clients already parse.
type Location struct {
	ID          string      `json:"locationid"`
	Name        string      `json:"locationname"`
	Coordinates Coordinates `json:"coordinates"`
	CreatedAt   string      `json:"createdat"`
	DeletedAt   *string     `json:"deletedat"`
}

// Store reads the locations catalog.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return Store{db: db} }

// List returns every catalog row with complete coordinates. The coordinates
// column holds a JSON document whose latitude/longitude may each be null;
// incomplete rows are skipped, complete ones rounded to 6 decimal places.
func (s Store) List() ([]Location, error) {
	rows, err := s.db.Query("SELECT locationid, locationname, coordinates, createdat, deletedat FROM locations")
	if err != nil {
		return nil, errors.Join(ErrDatabase, err)
	}
	defer rows.Close()

	locations := []Location{}
	for rows.Next() {
		var (
			loc       Location
			rawCoords []byte
			deletedAt sql.NullString
		)
		if err := rows.Scan(&loc.ID, &loc.Name, &rawCoords, &loc.CreatedAt, &deletedAt); err != nil {
			return nil, errors.Join(ErrDatabase, err)
		}
		coords, ok := decodeCoordinates(rawCoords)
		if !ok {
			continue
		}
		loc.Coordinates = coords
		if deletedAt.Valid {
			loc.DeletedAt = &deletedAt.String
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrDatabase, err)
	}
	return locations, nil
}

// decodeCoordinates parses the coordinates JSON document and reports whether
// both components are present.
func decodeCoordinates(raw []byte) (Coordinates, bool) {
	var doc struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Coordinates{}, false
	}
	if doc.Latitude == nil || doc.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{
		Latitude:  round6(*doc.Latitude),
		Longitude: round6(*doc.Longitude),
	}, true
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
