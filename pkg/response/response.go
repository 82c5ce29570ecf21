package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "goal-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *HTTPError is served with its own status;
// 5xx ones hide their message. Any other error is treated as a bad request.
func Error(c *gin.Context, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		status := he.StatusCode()
		if status >= http.StatusInternalServerError {
			InternalError(c, err)
			return
		}
		c.JSON(status, Resp{
			ErrorCode: status,
			Message:   he.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// ErrorWithData is Error for validation failures that carry field details.
func ErrorWithData(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
		Errors:    data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
