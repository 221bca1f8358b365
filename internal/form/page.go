package form

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const PageTemplateName = "index.html.tmpl"

// PageData feeds the index page template.
type PageData struct {
	State State
	View  *View
}

func NewPageData(st State) PageData {
	data := PageData{State: st}
	if st.Result != nil {
		v := Render(*st.Result)
		data.View = &v
	}
	return data
}

func PageTemplate() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.tmpl")
}
