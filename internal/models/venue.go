// internal/models/venue.go
package models

import "time"

type Venue struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

// VenueForm carries a create/edit submission before it becomes a Venue.
type VenueForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"omitempty,max=120"`
	State              string   `form:"state" validate:"omitempty,max=120"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"omitempty,max=500"`
}

// VenueSummary is a listing/search row with its upcoming-show count.
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup holds every venue sharing one city/state pair.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenueShow is one of a venue's shows shaped for the detail page.
type VenueShow struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenuePage is the detail-page view model. Derived fields live here,
// never on the stored Venue itself.
type VenuePage struct {
	Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}
