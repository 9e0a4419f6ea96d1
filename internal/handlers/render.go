package handlers

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/sirupsen/logrus"
	"stagedir/internal/web"
)

var templates = parseTemplates()

var templateFuncs = template.FuncMap{
	"hasGenre": func(genres []string, genre string) bool {
		for _, g := range genres {
			if g == genre {
				return true
			}
		}
		return false
	},
}

func parseTemplates() map[string]*template.Template {
	names, err := fs.Glob(web.Templates, "templates/*.html")
	if err != nil {
		panic(err)
	}
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[path.Base(name)] = template.Must(
			template.New(path.Base(name)).Funcs(templateFuncs).ParseFS(web.Templates, name))
	}
	return parsed
}

// page is what every template executes against.
type page struct {
	Flash string
	Data  any
}

// render executes the named template into a buffer first so a template
// failure can still become a clean 500.
func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	tmpl, ok := templates[name]
	if !ok {
		logrus.WithField("template", name).Error("unknown template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page{Flash: popFlash(w, r), Data: data}); err != nil {
		logrus.WithError(err).WithField("template", name).Error("render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
