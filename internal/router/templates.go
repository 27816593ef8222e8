package router

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gin-contrib/multitemplate"
)

// LoadTemplates assembles every view from the shared layout and include
// fragments under templatesDir.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"formatDate": func(t time.Time) string {
			return t.Format("02.01.2006")
		},
		"minutes": func(m int) string {
			return fmt.Sprintf("%d דקות קריאה", m)
		},
	}

	// Public views
	r.AddFromFilesFuncs("home.html", funcMap, assemble(templatesDir+"/views/home.html")...)
	r.AddFromFilesFuncs("about.html", funcMap, assemble(templatesDir+"/views/about.html")...)
	r.AddFromFilesFuncs("contact.html", funcMap, assemble(templatesDir+"/views/contact.html")...)
	r.AddFromFilesFuncs("articles/list.html", funcMap, assemble(templatesDir+"/views/articles/list.html")...)
	r.AddFromFilesFuncs("articles/detail.html", funcMap, assemble(templatesDir+"/views/articles/detail.html")...)

	// Management area
	r.AddFromFilesFuncs("admin/dashboard.html", funcMap, assemble(templatesDir+"/views/admin/dashboard.html")...)
	r.AddFromFilesFuncs("admin/articles.html", funcMap, assemble(templatesDir+"/views/admin/articles.html")...)
	r.AddFromFilesFuncs("admin/article_form.html", funcMap, assemble(templatesDir+"/views/admin/article_form.html")...)
	r.AddFromFilesFuncs("admin/comments.html", funcMap, assemble(templatesDir+"/views/admin/comments.html")...)
	r.AddFromFilesFuncs("admin/contacts.html", funcMap, assemble(templatesDir+"/views/admin/contacts.html")...)
	r.AddFromFilesFuncs("admin/tags.html", funcMap, assemble(templatesDir+"/views/admin/tags.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
