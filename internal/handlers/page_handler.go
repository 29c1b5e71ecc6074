package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	JobDescription string
	Warning        string
	Error          string
	RawReply       string
	View           *models.ReportView
	ReportJSON     string
}

// HandleIndex handles GET /
func HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, fiber.StatusOK, pageData{})
}

func renderPage(c *fiber.Ctx, status int, page pageData) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "index.html", page); err != nil {
		return err
	}

	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
