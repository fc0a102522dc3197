package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse represents a simple message response (typed alternative to gin.H).
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse represents a list response. The API serves full snapshots;
// consumers filter by status category themselves.
type ListResponse struct {
	Data  any `json:"data"`
	Total int `json:"total"`
}

// Success responds with HTTP 200 OK status and the provided data.
func Success(c *gin.Context, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, data)
}

// NoContent responds with HTTP 204 No Content.
func NoContent(c *gin.Context) {
	if c == nil {
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSuccess responds with list data in a consistent format.
func ListSuccess(c *gin.Context, data any, total int) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, ListResponse{
		Data:  data,
		Total: total,
	})
}

// Created responds with HTTP 201 Created status including the new resource
// and sets the Location header per RFC 7231.
// The resourcePath should be the base path (e.g., "/api/v1/stories"), the ID will be appended.
func Created(c *gin.Context, id string, resourcePath string, data any) {
	if c == nil {
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%s", resourcePath, id))
	c.JSON(http.StatusCreated, data)
}

// RFC 9457 Problem Details compatible error response functions.

// ProblemValidationError responds with HTTP 422 for input validation failures.
func ProblemValidationError(c *gin.Context, detail string, errors []ValidationError) {
	if c == nil {
		return
	}
	SendProblem(c, NewValidationProblem(detail, c.Request.URL.Path, errors))
}

// ProblemNotFound responds with HTTP 404 Not Found.
func ProblemNotFound(c *gin.Context, resource string) {
	if c == nil {
		return
	}
	SendProblem(c, NewNotFoundProblem(resource, c.Request.URL.Path))
}

// ProblemConflict responds with HTTP 409 Conflict.
func ProblemConflict(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewConflictProblem(detail, c.Request.URL.Path))
}

// ProblemBadRequest responds with HTTP 400 Bad Request.
func ProblemBadRequest(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewBadRequestProblem(detail, c.Request.URL.Path))
}

// ProblemInternalServer responds with HTTP 500 Internal Server Error.
func ProblemInternalServer(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewInternalServerProblem(detail, c.Request.URL.Path))
}
