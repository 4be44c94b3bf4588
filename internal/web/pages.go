package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages отдаёт две статичные страницы. Данные в шаблоны не передаются,
// поэтому ни коды, ни ошибки в HTML не попадают.
type Pages struct {
	index []byte
	admin []byte
}

func NewPages() (*Pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	p := &Pages{}
	if p.index, err = render(tmpl, "index.html"); err != nil {
		return nil, err
	}
	if p.admin, err = render(tmpl, "admin.html"); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pages) Routes(r chi.Router) {
	r.Get("/", p.serve(p.index))
	r.Get("/admin", p.serve(p.admin))
}

func (p *Pages) serve(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Write(body)
	}
}

func render(tmpl *template.Template, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
