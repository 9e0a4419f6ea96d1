package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"stagedir/internal/forms"
	"stagedir/internal/models"
	"stagedir/internal/repository"
)

type VenueHandler struct {
	repo repository.VenueRepository
}

func NewVenueHandler(repo repository.VenueRepository) *VenueHandler {
	return &VenueHandler{repo: repo}
}

// venueFormPage feeds venue_form.html for both create and edit.
type venueFormPage struct {
	Title        string
	Action       string
	Venue        *models.Venue
	GenreChoices []string
}

// List handles GET /venues: every venue grouped by city/state.
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.repo.GroupedByLocation(r.Context(), time.Now())
	if err != nil {
		logrus.WithError(err).Error("list venues")
		ServerError(w, r)
		return
	}
	render(w, r, http.StatusOK, "venues.html", groups)
}

// Show handles GET /venues/{id}: the detail page with past/upcoming shows.
func (h *VenueHandler) Show(w http.ResponseWriter, r *http.Request) {
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
		logrus.WithError(err).WithField("venue_id", id).Error("venue detail")
		ServerError(w, r)
		return
	}
	render(w, r, http.StatusOK, "show_venue.html", detail)
}

// NewForm handles GET /venues/create.
func (h *VenueHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "venue_form.html", venueFormPage{
		Title:        "List a venue",
		Action:       "/venues/create",
		GenreChoices: genreChoices,
	})
}

// Create handles POST /venues/create: validate, persist, flash, redirect home.
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	const failure = "An error occurred. Venue could not be listed."

	if err := r.ParseForm(); err != nil {
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := forms.Venue(r.PostForm)
	if errs := forms.Validate(form); errs != nil {
		logrus.WithField("errors", errs).Info("venue form failed validation")
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	venue := venueFromForm(form, 0)
	if err := h.repo.Create(r.Context(), venue); err != nil {
		logrus.WithError(err).Error("create venue")
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "Venue "+venue.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditForm handles GET /venues/{id}/edit with the form pre-populated.
func (h *VenueHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("venue_id", id).Error("load venue for edit")
		ServerError(w, r)
		return
	}

	render(w, r, http.StatusOK, "venue_form.html", venueFormPage{
		Title:        "Edit " + venue.Name,
		Action:       fmt.Sprintf("/venues/%d/edit", id),
		Venue:        venue,
		GenreChoices: genreChoices,
	})
}

// Edit handles POST /venues/{id}/edit: full replace of all mutable fields.
func (h *VenueHandler) Edit(w http.ResponseWriter, r *http.Request) {
	const failure = "Venue was not edited successfully."

	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}
	detailPath := fmt.Sprintf("/venues/%d", id)

	if err := r.ParseForm(); err != nil {
		setFlash(w, failure)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	form := forms.Venue(r.PostForm)
	if errs := forms.Validate(form); errs != nil {
		logrus.WithField("errors", errs).Info("venue form failed validation")
		setFlash(w, failure)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	venue := venueFromForm(form, id)
	if err := h.repo.Update(r.Context(), venue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("venue_id", id).Error("update venue")
		setFlash(w, failure)
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	setFlash(w, "Venue "+venue.Name+" edited successfully")
	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}

// Delete handles POST /venues/{id}/delete. The venue's shows go with it.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		NotFound(w, r)
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logrus.WithError(err).WithField("venue_id", id).Error("load venue for delete")
		ServerError(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		logrus.WithError(err).WithField("venue_id", id).Error("delete venue")
		setFlash(w, "Venue was not deleted successfully.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "Venue "+venue.Name+" was deleted successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Search handles POST /venues/search.
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ServerError(w, r)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := h.repo.Search(r.Context(), term, time.Now())
	if err != nil {
		logrus.WithError(err).WithField("term", term).Error("search venues")
		ServerError(w, r)
		return
	}

	render(w, r, http.StatusOK, "search_venues.html", struct {
		Term    string
		Results *models.VenueSearchResults
	}{term, results})
}

func venueFromForm(form models.VenueForm, id int) *models.Venue {
	return &models.Venue{
		ID:                 id,
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Address:            form.Address,
		Phone:              form.Phone,
		Genres:             form.Genres,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		SeekingTalent:      form.SeekingTalent,
		SeekingDescription: form.SeekingDescription,
	}
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
