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

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	All(ctx context.Context) ([]models.ShowRow, error)
}

type showRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	query := `INSERT INTO shows (artist_id, venue_id, start_time)
			  VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		show.ArtistID, show.VenueID, show.StartTime,
	).Scan(&show.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrMissingReference
		}
		return fmt.Errorf("create show: %w", err)
	}

	return nil
}

// All returns every show with the venue and artist names denormalized in.
func (r *showRepository) All(ctx context.Context) ([]models.ShowRow, error) {
	query := `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
			  FROM shows s
			  JOIN venues v ON v.id = s.venue_id
			  JOIN artists a ON a.id = s.artist_id
			  ORDER BY s.start_time, s.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowRow
	for rows.Next() {
		var row models.ShowRow
		var startTime time.Time
		if err := rows.Scan(
			&row.VenueID, &row.VenueName, &row.ArtistID, &row.ArtistName,
			&row.ArtistImageLink, &startTime,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		row.StartTime = startTime.Format(models.ShowTimeLayout)
		shows = append(shows, row)
	}

	return shows, rows.Err()
}
