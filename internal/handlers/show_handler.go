package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"stagedir/internal/forms"
	"stagedir/internal/models"
	"stagedir/internal/repository"
)

type ShowHandler struct {
	repo repository.ShowRepository
}

func NewShowHandler(repo repository.ShowRepository) *ShowHandler {
	return &ShowHandler{repo: repo}
}

// List handles GET /shows: every show with artist and venue names.
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.repo.All(r.Context())
	if err != nil {
		logrus.WithError(err).Error("list shows")
		ServerError(w, r)
		return
	}
	render(w, r, http.StatusOK, "shows.html", shows)
}

// NewForm handles GET /shows/create.
func (h *ShowHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "show_form.html", nil)
}

// Create handles POST /shows/create. A show referencing a missing artist or
// venue fails like any other persistence error: flash and redirect.
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	const failure = "Show was not successfully listed."

	if err := r.ParseForm(); err != nil {
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form, parseErrs := forms.Show(r.PostForm)
	errs := forms.Validate(form).Merge(parseErrs)
	if errs != nil {
		logrus.WithField("errors", errs).Info("show form failed validation")
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	show := &models.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.StartTime,
	}
	if err := h.repo.Create(r.Context(), show); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			logrus.WithFields(logrus.Fields{
				"artist_id": form.ArtistID,
				"venue_id":  form.VenueID,
			}).Info("show references missing artist or venue")
		} else {
			logrus.WithError(err).Error("create show")
		}
		setFlash(w, failure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
