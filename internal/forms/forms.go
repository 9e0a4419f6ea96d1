// Package forms turns urlencoded submissions into typed form values and
// checks them against the constraints declared on the form structs.
package forms

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"stagedir/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the submitted field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps a field name to its failure message. A nil map means the
// submission passed.
type Errors map[string]string

// Merge folds other into e, with other winning on conflicts.
func (e Errors) Merge(other Errors) Errors {
	if len(other) == 0 {
		return e
	}
	if e == nil {
		e = Errors{}
	}
	for field, msg := range other {
		e[field] = msg
	}
	return e
}

// Validate checks every constraint on form and returns the complete set of
// field errors, never just the first one.
func Validate(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"form": "invalid submission"}
	}

	out := Errors{}
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

// Venue decodes a venue create/edit submission.
func Venue(v url.Values) models.VenueForm {
	return models.VenueForm{
		Name:               strings.TrimSpace(v.Get("name")),
		City:               strings.TrimSpace(v.Get("city")),
		State:              strings.TrimSpace(v.Get("state")),
		Address:            strings.TrimSpace(v.Get("address")),
		Phone:              strings.TrimSpace(v.Get("phone")),
		Genres:             v["genres"],
		ImageLink:          strings.TrimSpace(v.Get("image_link")),
		FacebookLink:       strings.TrimSpace(v.Get("facebook_link")),
		Website:            strings.TrimSpace(v.Get("website")),
		SeekingTalent:      checked(v.Get("seeking_talent")),
		SeekingDescription: strings.TrimSpace(v.Get("seeking_description")),
	}
}

// Artist decodes an artist create/edit submission.
func Artist(v url.Values) models.ArtistForm {
	return models.ArtistForm{
		Name:               strings.TrimSpace(v.Get("name")),
		City:               strings.TrimSpace(v.Get("city")),
		State:              strings.TrimSpace(v.Get("state")),
		Phone:              strings.TrimSpace(v.Get("phone")),
		Genres:             v["genres"],
		ImageLink:          strings.TrimSpace(v.Get("image_link")),
		FacebookLink:       strings.TrimSpace(v.Get("facebook_link")),
		Website:            strings.TrimSpace(v.Get("website")),
		SeekingVenue:       checked(v.Get("seeking_venue")),
		SeekingDescription: strings.TrimSpace(v.Get("seeking_description")),
	}
}

// Show decodes a show create submission. Unparsable ids or times come back
// as field errors; empty fields are left zero so the required checks fire.
func Show(v url.Values) (models.ShowForm, Errors) {
	var form models.ShowForm
	parseErrs := Errors{}

	if raw := strings.TrimSpace(v.Get("artist_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs["artist_id"] = "must be a number"
		} else {
			form.ArtistID = id
		}
	}
	if raw := strings.TrimSpace(v.Get("venue_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs["venue_id"] = "must be a number"
		} else {
			form.VenueID = id
		}
	}
	if raw := strings.TrimSpace(v.Get("start_time")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			parseErrs["start_time"] = "must be a valid date and time"
		} else {
			form.StartTime = t
		}
	}

	if len(parseErrs) == 0 {
		parseErrs = nil
	}
	return form, parseErrs
}

// startTimeLayouts covers HTML datetime-local inputs and plain timestamps.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func checked(raw string) bool {
	switch strings.ToLower(raw) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}
