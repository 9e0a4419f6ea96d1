package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"stagedir/internal/forms"
	"stagedir/internal/models"
	"stagedir/internal/repository"
)

type ArtistHandler struct {
	repo repository.ArtistRepository
}

func NewArtistHandler(repo repository.ArtistRepository) *ArtistHandler {
	return &ArtistHandler{repo: repo}
}

type artistFormPage struct {
	Title        string
	Action       string
	Artist       *models.Artist
	GenreChoices []string
}

// List handles GET /artists: a flat id/name listing.
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.repo.List(r.Context())
	if err != nil {
		logrus.WithError(err).Error("list artists")
		ServerError(w, r)
		return
	}
	render(w, r, http.StatusOK, "artists.html", artists)
}

// Show handles GET /artists/{id}: the detail page with past/upcoming shows.
func (h *ArtistHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}

	detail, err := h.repo.Page(r.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("artist_id", id).Error("artist detail")
		ServerError(w, r)
		return
	}
	render(w, r, http.StatusOK, "show_artist.html", detail)
}

// NewForm handles GET /artists/create.
func (h *ArtistHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "artist_form.html", artistFormPage{
		Title:        "List an artist",
		Action:       "/artists/create",
		GenreChoices: genreChoices,
	})
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	const failure = "Artist was not successfully listed."

	if err := r.ParseForm(); err != nil {
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := forms.Artist(r.PostForm)
	if errs := forms.Validate(form); errs != nil {
		logrus.WithField("errors", errs).Info("artist form failed validation")
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	artist := artistFromForm(form, 0)
	if err := h.repo.Create(r.Context(), artist); err != nil {
		logrus.WithError(err).Error("create artist")
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "Artist "+artist.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditForm handles GET /artists/{id}/edit with the form pre-populated.
func (h *ArtistHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("artist_id", id).Error("load artist for edit")
		ServerError(w, r)
		return
	}

	render(w, r, http.StatusOK, "artist_form.html", artistFormPage{
		Title:        "Edit " + artist.Name,
		Action:       fmt.Sprintf("/artists/%d/edit", id),
		Artist:       artist,
		GenreChoices: genreChoices,
	})
}

// Edit handles POST /artists/{id}/edit: full replace of all mutable fields.
func (h *ArtistHandler) Edit(w http.ResponseWriter, r *http.Request) {
	const failure = "Artist was not edited successfully."

	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}
	detailPath := fmt.Sprintf("/artists/%d", id)

	if err := r.ParseForm(); err != nil {
		setFlash(w, failure)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	form := forms.Artist(r.PostForm)
	if errs := forms.Validate(form); errs != nil {
		logrus.WithField("errors", errs).Info("artist form failed validation")
		setFlash(w, failure)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	artist := artistFromForm(form, id)
	if err := h.repo.Update(r.Context(), artist); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("artist_id", id).Error("update artist")
		setFlash(w, failure)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	setFlash(w, "Artist "+artist.Name+" was successfully edited!")
	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}

// Delete handles POST /artists/{id}/delete. The artist's shows go with it.
func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("artist_id", id).Error("load artist for delete")
		ServerError(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		logrus.WithError(err).WithField("artist_id", id).Error("delete artist")
		setFlash(w, "Artist was not deleted successfully.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "Artist "+artist.Name+" was deleted successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Search handles POST /artists/search.
func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ServerError(w, r)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := h.repo.Search(r.Context(), term, time.Now())
	if err != nil {
		logrus.WithError(err).WithField("term", term).Error("search artists")
		ServerError(w, r)
		return
	}

	render(w, r, http.StatusOK, "search_artists.html", struct {
		Term    string
		Results *models.ArtistSearchResults
	}{term, results})
}

func artistFromForm(form models.ArtistForm, id int) *models.Artist {
	return &models.Artist{
		ID:                 id,
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		Genres:             form.Genres,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		SeekingVenue:       form.SeekingVenue,
		SeekingDescription: form.SeekingDescription,
	}
}
