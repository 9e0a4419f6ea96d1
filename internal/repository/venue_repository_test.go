package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"stagedir/internal/models"
)

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "genres", "image_link",
	"facebook_link", "website", "seeking_talent", "seeking_description", "created_at",
}

func venueRow(id int, name string, genres string, createdAt time.Time) []driver.Value {
	return []driver.Value{
		id, name, "Nashville", "TN", "123 Main St", "", []byte(genres),
		"", "", "", false, "", createdAt,
	}
}

func TestVenueCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO venues").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	repo := NewVenueRepository(db)
	venue := &models.Venue{
		Name:    "The Blue Note",
		City:    "Nashville",
		State:   "TN",
		Address: "123 Main St",
		Genres:  []string{"Jazz", "Blues"},
	}
	if err := repo.Create(context.Background(), venue); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if venue.ID != 7 {
		t.Fatalf("expected id 7, got %d", venue.ID)
	}
	if venue.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueGetByIDRoundTripsGenres(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(venueCols).
		AddRow(venueRow(1, "The Blue Note", "{Jazz,Blues}", time.Now())...)
	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id").
		WithArgs(1).
		WillReturnRows(rows)

	repo := NewVenueRepository(db)
	venue, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if len(venue.Genres) != 2 || venue.Genres[0] != "Jazz" || venue.Genres[1] != "Blues" {
		t.Fatalf("expected ordered genres [Jazz Blues], got %v", venue.Genres)
	}
}

func TestVenueGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(venueCols))

	repo := NewVenueRepository(db)
	if _, err := repo.GetByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVenueDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM venues").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewVenueRepository(db)
	if err := repo.Delete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// A show starting exactly at the query time must land in neither bucket.
func TestVenuePagePartitionsShowsStrictly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(venueCols).
			AddRow(venueRow(1, "The Blue Note", "{Jazz}", now.Add(-24*time.Hour))...))

	showRows := sqlmock.NewRows([]string{"id", "name", "image_link", "start_time"}).
		AddRow(4, "Guns N Petals", "", now.Add(-time.Hour)).
		AddRow(5, "The Wild Sax Band", "", now).
		AddRow(6, "Matt Quevedo", "", now.Add(time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM shows s JOIN artists").
		WithArgs(1).
		WillReturnRows(showRows)

	repo := NewVenueRepository(db)
	detail, err := repo.Page(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	if detail.PastShowsCount != 1 || detail.PastShows[0].ArtistName != "Guns N Petals" {
		t.Fatalf("expected 1 past show, got %+v", detail.PastShows)
	}
	if detail.UpcomingShowsCount != 1 || detail.UpcomingShows[0].ArtistName != "Matt Quevedo" {
		t.Fatalf("expected 1 upcoming show, got %+v", detail.UpcomingShows)
	}

	want := now.Add(time.Hour).Format(models.ShowTimeLayout)
	if detail.UpcomingShows[0].StartTime != want {
		t.Fatalf("expected start time %q, got %q", want, detail.UpcomingShows[0].StartTime)
	}
}

func TestVenueSearchEmptyTermMatchesAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "count"}).
		AddRow(1, "The Blue Note", 2).
		AddRow(2, "Park Square Live", 0)
	mock.ExpectQuery("SELECT (.+) FROM venues v").
		WithArgs("", sqlmock.AnyArg()).
		WillReturnRows(rows)

	repo := NewVenueRepository(db)
	results, err := repo.Search(context.Background(), "", time.Now())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results.Count != 2 {
		t.Fatalf("expected count 2, got %d", results.Count)
	}
	if results.Data[0].NumUpcomingShows != 2 {
		t.Fatalf("expected 2 upcoming shows, got %d", results.Data[0].NumUpcomingShows)
	}
}

func TestVenuesGroupedByLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT DISTINCT city, state FROM venues").
		WillReturnRows(sqlmock.NewRows([]string{"city", "state"}).
			AddRow("Nashville", "TN").
			AddRow("New York", "NY"))

	mock.ExpectQuery("SELECT v.id, v.name").
		WithArgs("Nashville", "TN", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
			AddRow(1, "The Blue Note", 1))
	mock.ExpectQuery("SELECT v.id, v.name").
		WithArgs("New York", "NY", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
			AddRow(2, "Park Square Live", 0))

	repo := NewVenueRepository(db)
	groups, err := repo.GroupedByLocation(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("GroupedByLocation: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].City != "Nashville" || len(groups[0].Venues) != 1 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[0].Venues[0].NumUpcomingShows != 1 {
		t.Fatalf("expected 1 upcoming show, got %+v", groups[0].Venues[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
