package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// NotFound renders the 404 page. Wired as the router's fallback and used
// directly when a detail route misses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "404.html", nil)
}

// ServerError renders the generic 500 page. Details stay in the logs.
func ServerError(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusInternalServerError, "500.html", nil)
}

// Recoverer turns a panicking request into the 500 page.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logrus.WithFields(logrus.Fields{
					"panic": rec,
					"path":  r.URL.Path,
				}).Error("request panicked")
				ServerError(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
