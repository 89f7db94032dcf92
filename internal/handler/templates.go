package handlers

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{"home.html", "post.html", "login.html", "admin.html", "posts.html", "editor.html"}

func linebreaks(s string) template.HTML {
	s = template.HTMLEscapeString(s)

	paragraphs := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n")
	var result []string

	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			p = strings.ReplaceAll(p, "\n", "<br>")
			result = append(result, "<p>"+p+"</p>")
		}
	}

	return template.HTML(strings.Join(result, "\n"))
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

func loadTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template)

	funcs := template.FuncMap{
		"linebreaks": linebreaks,
		"date":       formatDate,
		"join":       strings.Join,
	}

	for _, page := range pages {
		templates[page] = template.Must(
			template.New("").Funcs(funcs).ParseFS(templatesFS,
				"templates/base.html",
				"templates/"+page,
			))
	}

	return templates
}
