package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/STIWARI-IN/AI-ML/api/http/presenter"
	"github.com/STIWARI-IN/AI-ML/pkg/advisor"
	"github.com/STIWARI-IN/AI-ML/pkg/chain"
)

type AdvisorHandler struct {
	uc advisor.UseCase
}

func NewAdvisorHandler(uc advisor.UseCase) *AdvisorHandler { return &AdvisorHandler{uc: uc} }

type adviceRequest struct {
	Query string `json:"query"`
}

// List returns the configured advisors.
// @Summary List advisors
// @Tags    advisors
// @Produce json
// @Success 200 {array} advisor.Advisor
// @Router  /advisors [get]
func (h *AdvisorHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Advisors())
}

// Advise runs the advisor's two-step prompt chain for a place name.
// @Summary Run an advisor
// @Description Sends the query through the advisor's prompt chain and returns the place name and the parsed list.
// @Tags    advisors
// @Accept  json
// @Produce json
// @Param   slug  path string        true "Advisor slug, e.g. travel"
// @Param   input body adviceRequest true "Place name"
// @Success 200 {object} advisor.Advice
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /advisors/{slug}/advice [post]
func (h *AdvisorHandler) Advise(c *fiber.Ctx) error {
	var req adviceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	out, err := h.uc.Advise(c.Context(), c.Params("slug"), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, advisor.ErrUnknownAdvisor):
			return presenter.Error(c, http.StatusNotFound, "advisor not found")
		case errors.Is(err, advisor.ErrEmptyInput):
			return presenter.Error(c, http.StatusBadRequest, "query is required")
		case errors.Is(err, chain.ErrExternalService):
			return presenter.Error(c, http.StatusBadGateway, "completion service failed, please retry")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to run advisor")
		}
	}
	return presenter.JSON(c, http.StatusOK, out)
}
