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

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]models.ArtistRef, error)
	Search(ctx context.Context, term string, now time.Time) (*models.ArtistSearchResults, error)
	Page(ctx context.Context, id int, now time.Time) (*models.ArtistPage, error)
	RecentlyListed(ctx context.Context, limit int) ([]models.Artist, error)
}

type artistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) ArtistRepository {
	return &artistRepository{db: db}
}

const artistColumns = `id, name, city, state, phone, genres, image_link,
			  facebook_link, website, seeking_venue, seeking_description, created_at`

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	query := `INSERT INTO artists (name, city, state, phone, genres, image_link,
			  facebook_link, website, seeking_venue, seeking_description, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, pq.Array(genres),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, now,
	).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	artist.CreatedAt = now
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	var artist models.Artist
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artist.ID, &artist.Name, &artist.City, &artist.State, &artist.Phone,
		pq.Array(&artist.Genres), &artist.ImageLink, &artist.FacebookLink,
		&artist.Website, &artist.SeekingVenue, &artist.SeekingDescription,
		&artist.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}

	return &artist, nil
}

// Update replaces every mutable field. created_at is never touched.
func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	query := `UPDATE artists SET name = $1, city = $2, state = $3, phone = $4,
			  genres = $5, image_link = $6, facebook_link = $7, website = $8,
			  seeking_venue = $9, seeking_description = $10
			  WHERE id = $11`

	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	result, err := r.db.ExecContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, pq.Array(genres),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, artist.ID,
	)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
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

// Delete removes the artist; its shows go with it via the FK cascade.
func (r *artistRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM artists WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
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

func (r *artistRepository) List(ctx context.Context) ([]models.ArtistRef, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM artists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var artists []models.ArtistRef
	for rows.Next() {
		var ref models.ArtistRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, ref)
	}

	return artists, rows.Err()
}

// Search matches term case-insensitively against name, city or state.
// An empty term matches every artist.
func (r *artistRepository) Search(ctx context.Context, term string, now time.Time) (*models.ArtistSearchResults, error) {
	query := `SELECT a.id, a.name,
			  (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > $2)
			  FROM artists a
			  WHERE a.name ILIKE '%' || $1 || '%'
			     OR a.city ILIKE '%' || $1 || '%'
			     OR a.state ILIKE '%' || $1 || '%'
			  ORDER BY a.id`

	rows, err := r.db.QueryContext(ctx, query, term, now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	results := &models.ArtistSearchResults{Data: []models.ArtistSummary{}}
	for rows.Next() {
		var summary models.ArtistSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.UpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist summary: %w", err)
		}
		results.Data = append(results.Data, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}

	results.Count = len(results.Data)
	return results, nil
}

// Page builds the detail view model with the same strict past/upcoming
// boundary as the venue page.
func (r *artistRepository) Page(ctx context.Context, id int, now time.Time) (*models.ArtistPage, error) {
	artist, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT v.id, v.name, v.image_link, s.start_time
			  FROM shows s JOIN venues v ON v.id = s.venue_id
			  WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list shows for artist: %w", err)
	}
	defer rows.Close()

	page := &models.ArtistPage{
		Artist:        *artist,
		PastShows:     []models.ArtistShow{},
		UpcomingShows: []models.ArtistShow{},
	}
	for rows.Next() {
		var show models.ArtistShow
		var startTime time.Time
		if err := rows.Scan(&show.VenueID, &show.VenueName, &show.VenueImageLink, &startTime); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
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
		return nil, fmt.Errorf("list shows for artist: %w", err)
	}

	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// RecentlyListed returns the newest artists first, higher id winning ties.
func (r *artistRepository) RecentlyListed(ctx context.Context, limit int) ([]models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists
			  ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var artist models.Artist
		if err := rows.Scan(
			&artist.ID, &artist.Name, &artist.City, &artist.State, &artist.Phone,
			pq.Array(&artist.Genres), &artist.ImageLink, &artist.FacebookLink,
			&artist.Website, &artist.SeekingVenue, &artist.SeekingDescription,
			&artist.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}
