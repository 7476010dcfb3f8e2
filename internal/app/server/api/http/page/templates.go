package page

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageIndex = "index.html"
	pageForm  = "add-data.html"
	pageTable = "show-table-data.html"
)

var pages = map[string]*template.Template{
	pageIndex: mustParse(pageIndex),
	pageForm:  mustParse(pageForm),
	pageTable: mustParse(pageTable),
}

// mustParse pairs a page with the shared layout; each page defines the
// "title" and "content" blocks the layout renders.
func mustParse(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

type formView struct {
	Success bool
	Record  formRecord
}

type formRecord struct {
	Name string
}

type tableView struct {
	Records []tableRow
}

type tableRow struct {
	ID   int64
	Name string
}
