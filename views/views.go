package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates devolve o conjunto de páginas, registradas pelo nome do arquivo
// ("form.html", "lister.html", ...).
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}
