package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"travelapi/internal/http/middleware"
	"travelapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
// "detail" mirrors "error" for clients written against the FastAPI services.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"detail":     message,
		"code":       codeForStatus(status),
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		RespondError(c, http.StatusUnprocessableEntity, "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			RespondError(c, http.StatusUnprocessableEntity, "request body is required", nil)
			return false
		}
		RespondError(c, http.StatusUnprocessableEntity, "invalid payload", err)
		return false
	}
	return true
}

// BindQueryOrError binds query parameters into dst.
func BindQueryOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "invalid query parameters", err)
		return false
	}
	return true
}

// QueryFloat reads an optional float parameter. A present but empty or
// malformed value is answered with 422.
func QueryFloat(c *gin.Context, key string) (*float64, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "invalid "+key, err)
		return nil, false
	}
	return &v, true
}

// QueryFlag reads an optional boolean parameter, false when absent.
func QueryFlag(c *gin.Context, key string) (bool, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return false, true
	}
	v, err := utils.ParseFlag(raw)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "invalid "+key, err)
		return false, false
	}
	return v, true
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusUnprocessableEntity, "invalid "+name, err)
		return 0, false
	}
	return id, true
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusInternalServerError:
		return "internal_error"
	}
	return http.StatusText(status)
}
