package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/STIWARI-IN/AI-ML/pkg/advisor"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/advisor.html"))

// PageHandler renders the sidebar page: a query box, a search button and the advice.
type PageHandler struct {
	uc    advisor.UseCase
	title string
}

func NewPageHandler(uc advisor.UseCase, appTitle string) *PageHandler {
	return &PageHandler{uc: uc, title: appTitle}
}

type pageData struct {
	AppTitle string
	Advisors []advisor.Advisor
	Current  advisor.Advisor
	Query    string
	Advice   *advisor.Advice
	Error    string
}

// Index redirects to the first advisor.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	list := h.uc.Advisors()
	if len(list) == 0 {
		return c.SendStatus(http.StatusNotFound)
	}
	return c.Redirect("/advisors/"+list[0].Slug, http.StatusFound)
}

// Advisor renders one advisor page. A blank q renders the form only.
func (h *PageHandler) Advisor(c *fiber.Ctx) error {
	data := pageData{AppTitle: h.title, Advisors: h.uc.Advisors()}

	current, err := h.uc.Get(c.Params("slug"))
	if err != nil {
		data.Error = "Unknown advisor."
		return h.render(c, http.StatusNotFound, data)
	}
	data.Current = current
	data.Query = strings.TrimSpace(c.Query("q"))
	if data.Query == "" {
		return h.render(c, http.StatusOK, data)
	}

	advice, err := h.uc.Advise(c.Context(), current.Slug, data.Query)
	switch {
	case err == nil:
		data.Advice = &advice
	case errors.Is(err, advisor.ErrEmptyInput):
		// nothing to show, the form asks again
	default:
		data.Error = "Could not get suggestions right now. Please try again."
		return h.render(c, http.StatusBadGateway, data)
	}
	return h.render(c, http.StatusOK, data)
}

func (h *PageHandler) render(c *fiber.Ctx, status int, data pageData) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
