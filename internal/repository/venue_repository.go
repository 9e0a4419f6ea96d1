package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"stagedir/internal/models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int) error
	GroupedByLocation(ctx context.Context, now time.Time) ([]models.CityGroup, error)
	Search(ctx context.Context, term string, now time.Time) (*models.VenueSearchResults, error)
	Page(ctx context.Context, id int, now time.Time) (*models.VenuePage, error)
	RecentlyListed(ctx context.Context, limit int) ([]models.Venue, error)
}

type venueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) VenueRepository {
	return &venueRepository{db: db}
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
			  facebook_link, website, seeking_talent, seeking_description, created_at`

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `INSERT INTO venues (name, city, state, address, phone, genres, image_link,
			  facebook_link, website, seeking_talent, seeking_description, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`

	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		pq.Array(genres), venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, now,
	).Scan(&venue.ID)
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	venue.CreatedAt = now
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var venue models.Venue
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID, &venue.Name, &venue.City, &venue.State, &venue.Address,
		&venue.Phone, pq.Array(&venue.Genres), &venue.ImageLink,
		&venue.FacebookLink, &venue.Website, &venue.SeekingTalent,
		&venue.SeekingDescription, &venue.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}

	return &venue, nil
}

// Update replaces every mutable field. created_at is never touched.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := `UPDATE venues SET name = $1, city = $2, state = $3, address = $4,
			  phone = $5, genres = $6, image_link = $7, facebook_link = $8,
			  website = $9, seeking_talent = $10, seeking_description = $11
			  WHERE id = $12`

	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}

	result, err := r.db.ExecContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		pq.Array(genres), venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, venue.ID,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the venue; its shows go with it via the FK cascade.
func (r *venueRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM venues WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *venueRepository) GroupedByLocation(ctx context.Context, now time.Time) ([]models.CityGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT city, state FROM venues ORDER BY city, state")
	if err != nil {
		return nil, fmt.Errorf("list venue locations: %w", err)
	}
	defer rows.Close()

	var groups []models.CityGroup
	for rows.Next() {
		var group models.CityGroup
		if err := rows.Scan(&group.City, &group.State); err != nil {
			return nil, fmt.Errorf("scan venue location: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venue locations: %w", err)
	}

	query := `SELECT v.id, v.name,
			  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $3)
			  FROM venues v WHERE v.city = $1 AND v.state = $2 ORDER BY v.id`

	for i := range groups {
		venueRows, err := r.db.QueryContext(ctx, query, groups[i].City, groups[i].State, now)
		if err != nil {
			return nil, fmt.Errorf("list venues for location: %w", err)
		}
		for venueRows.Next() {
			var summary models.VenueSummary
			if err := venueRows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
				venueRows.Close()
				return nil, fmt.Errorf("scan venue summary: %w", err)
			}
			groups[i].Venues = append(groups[i].Venues, summary)
		}
		if err := venueRows.Err(); err != nil {
			venueRows.Close()
			return nil, fmt.Errorf("list venues for location: %w", err)
		}
		venueRows.Close()
	}

	return groups, nil
}

// Search matches term case-insensitively against name, city or state.
// An empty term matches every venue.
func (r *venueRepository) Search(ctx context.Context, term string, now time.Time) (*models.VenueSearchResults, error) {
	query := `SELECT v.id, v.name,
			  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $2)
			  FROM venues v
			  WHERE v.name ILIKE '%' || $1 || '%'
			     OR v.city ILIKE '%' || $1 || '%'
			     OR v.state ILIKE '%' || $1 || '%'
			  ORDER BY v.id`

	rows, err := r.db.QueryContext(ctx, query, term, now)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	results := &models.VenueSearchResults{Data: []models.VenueSummary{}}
	for rows.Next() {
		var summary models.VenueSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue summary: %w", err)
		}
		results.Data = append(results.Data, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}

	results.Count = len(results.Data)
	return results, nil
}

// Page builds the detail view model: the venue plus its shows split into
// past and upcoming. The boundary is strict on both sides, so a show
// starting exactly at now lands in neither bucket.
func (r *venueRepository) Page(ctx context.Context, id int, now time.Time) (*models.VenuePage, error) {
	venue, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT a.id, a.name, a.image_link, s.start_time
			  FROM shows s JOIN artists a ON a.id = s.artist_id
			  WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list shows for venue: %w", err)
	}
	defer rows.Close()

	page := &models.VenuePage{
		Venue:         *venue,
		PastShows:     []models.VenueShow{},
		UpcomingShows: []models.VenueShow{},
	}
	for rows.Next() {
		var show models.VenueShow
		var startTime time.Time
		if err := rows.Scan(&show.ArtistID, &show.ArtistName, &show.ArtistImageLink, &startTime); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		show.StartTime = startTime.Format(models.ShowTimeLayout)
		switch {
		case startTime.Before(now):
			page.PastShows = append(page.PastShows, show)
		case startTime.After(now):
			page.UpcomingShows = append(page.UpcomingShows, show)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shows for venue: %w", err)
	}

	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// RecentlyListed returns the newest venues first. Among equal timestamps the
// higher id wins, so ties keep insertion order.
func (r *venueRepository) RecentlyListed(ctx context.Context, limit int) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues
			  ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var venue models.Venue
		if err := rows.Scan(
			&venue.ID, &venue.Name, &venue.City, &venue.State, &venue.Address,
			&venue.Phone, pq.Array(&venue.Genres), &venue.ImageLink,
			&venue.FacebookLink, &venue.Website, &venue.SeekingTalent,
			&venue.SeekingDescription, &venue.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}
