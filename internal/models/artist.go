// internal/models/artist.go
package models

import "time"

type Artist struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

// ArtistForm carries a create/edit submission before it becomes an Artist.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"omitempty,max=120"`
	State              string   `form:"state" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" validate:"required"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"omitempty,max=500"`
}

// ArtistRef is the flat id/name row on the artists index.
type ArtistRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ArtistSummary is a search row with its upcoming-show count.
type ArtistSummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int    `json:"upcoming_shows"`
}

type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// ArtistShow is one of an artist's shows shaped for the detail page.
type ArtistShow struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistPage is the detail-page view model.
type ArtistPage struct {
	Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
