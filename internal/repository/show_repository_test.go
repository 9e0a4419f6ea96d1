package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"stagedir/internal/models"
)

func TestShowCreateMissingReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO shows").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "shows_artist_id_fkey"})

	repo := NewShowRepository(db)
	show := &models.Show{ArtistID: 999, VenueID: 1, StartTime: time.Now()}
	if err := repo.Create(context.Background(), show); !errors.Is(err, ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got %v", err)
	}
}

func TestShowCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO shows").
		WithArgs(4, 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	repo := NewShowRepository(db)
	show := &models.Show{ArtistID: 4, VenueID: 1, StartTime: time.Now().Add(time.Hour)}
	if err := repo.Create(context.Background(), show); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if show.ID != 11 {
		t.Fatalf("expected id 11, got %d", show.ID)
	}
}

func TestShowAllFormatsStartTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	startTime := time.Date(2030, 6, 15, 19, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"venue_id", "venue_name", "artist_id", "artist_name", "image_link", "start_time",
	}).AddRow(1, "The Blue Note", 4, "Guns N Petals", "", startTime)
	mock.ExpectQuery("SELECT (.+) FROM shows s").WillReturnRows(rows)

	repo := NewShowRepository(db)
	shows, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
	if shows[0].StartTime != "06/15/2030, 19:30:00" {
		t.Fatalf("unexpected start time %q", shows[0].StartTime)
	}
	if shows[0].ArtistName != "Guns N Petals" || shows[0].VenueName != "The Blue Note" {
		t.Fatalf("unexpected row %+v", shows[0])
	}
}
