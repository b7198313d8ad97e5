package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"storefront_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// respondError writes the status for err. Not-found and unauthorized answers carry no body;
// everything else gets the error envelope without leaking driver messages.
func respondError(c *gin.Context, err error) {
	statusCode := mapErrorToStatus(err)
	switch statusCode {
	case http.StatusNotFound, http.StatusUnauthorized:
		c.Status(statusCode)
	case http.StatusInternalServerError:
		ErrorResponse(c, statusCode, "Internal server error")
	default:
		ErrorResponse(c, statusCode, err.Error())
	}
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func parseIntParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
