// internal/models/show.go
package models

import "time"

// ShowTimeLayout is the display format for show start times.
const ShowTimeLayout = "01/02/2006, 15:04:05"

type Show struct {
	ID        int       `json:"id"`
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowForm carries a create submission before it becomes a Show.
type ShowForm struct {
	ArtistID  int       `form:"artist_id" validate:"required"`
	VenueID   int       `form:"venue_id" validate:"required"`
	StartTime time.Time `form:"start_time" validate:"required"`
}

// ShowRow is the denormalized row on the shows index.
type ShowRow struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
