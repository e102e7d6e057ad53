package rest

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/recognizer/internal/domain"
	"github.com/totegamma/recognizer/internal/interface/rest/presenter"
	"github.com/totegamma/recognizer/internal/usecase"
)

type Handler struct {
	validate *usecase.ValidateUsecase
}

func NewHandler(validate *usecase.ValidateUsecase) *Handler {
	return &Handler{validate: validate}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealth)
	e.GET("/recognizers", h.handleRecognizers)
	e.GET("/recognizers/:entity", h.handleRecognizer)
	e.POST("/validate", h.handleValidate)
	e.POST("/validate/batch", h.handleValidateBatch)
	e.GET("/stats", h.handleStats)
}

type validateRequest struct {
	Entity    string `json:"entity"`
	Candidate string `json:"candidate"`
}

type batchRequest struct {
	Entity     string   `json:"entity"`
	Candidates []string `json:"candidates"`
}

type validateResponse struct {
	Entity   string `json:"entity"`
	Mode     string `json:"mode"`
	Result   bool   `json:"result"`
	Accepted bool   `json:"accepted"`
	Pattern  string `json:"pattern"`
	Cached   bool   `json:"cached"`
}

func toResponse(r domain.Result) validateResponse {
	return validateResponse{
		Entity:   r.Entity,
		Mode:     r.Mode.String(),
		Result:   r.Result,
		Accepted: r.Accepted(),
		Pattern:  r.Pattern,
		Cached:   r.Cached,
	}
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleRecognizers(c echo.Context) error {
	return presenter.OK(c, h.validate.Definitions())
}

func (h *Handler) handleRecognizer(c echo.Context) error {
	def, err := h.validate.Definition(c.Param("entity"))
	if err != nil {
		return h.error(c, err)
	}
	return presenter.OK(c, def)
}

func (h *Handler) handleValidate(c echo.Context) error {
	ctx := c.Request().Context()

	var req validateRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Entity == "" {
		return presenter.BadRequestMessage(c, "entity is required")
	}

	result, err := h.validate.Validate(ctx, req.Entity, req.Candidate)
	if err != nil {
		return h.error(c, err)
	}
	return presenter.OK(c, toResponse(result))
}

func (h *Handler) handleValidateBatch(c echo.Context) error {
	ctx := c.Request().Context()

	var req batchRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Entity == "" {
		return presenter.BadRequestMessage(c, "entity is required")
	}

	results, err := h.validate.ValidateBatch(ctx, req.Entity, req.Candidates)
	if err != nil {
		return h.error(c, err)
	}

	response := make([]validateResponse, 0, len(results))
	for _, r := range results {
		response = append(response, toResponse(r))
	}
	return presenter.OK(c, response)
}

func (h *Handler) handleStats(c echo.Context) error {
	stats, err := h.validate.Stats(c.Request().Context())
	if err != nil {
		return h.error(c, err)
	}
	return presenter.OK(c, stats)
}

func (h *Handler) error(c echo.Context, err error) error {
	var limitErr domain.LimitError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.As(err, &limitErr):
		return presenter.BadRequest(c, err)
	default:
		return presenter.InternalError(c, err)
	}
}
