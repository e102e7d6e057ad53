package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/recognizer/internal/interface/rest/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func BadRequest(c echo.Context, err error) error {
	middleware.Logger(c).WithError(err).Debug("bad request")
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	middleware.Logger(c).Debugf("bad request: %s", msg)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func NotFound(c echo.Context, msg string) error {
	middleware.Logger(c).Debugf("not found: %s", msg)
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

func InternalError(c echo.Context, err error) error {
	middleware.Logger(c).WithError(err).Error("internal error")
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
