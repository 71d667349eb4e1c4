package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	v, _ := c.Get("trace_id")
	id, _ := v.(string)
	return id
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondErrorData is used when the error payload carries detail the client
// renders, e.g. required-vs-available time for an infeasible itinerary.
func RespondErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var optErr *OptimizerError

	switch {
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "No plan found for this user")
	case errors.Is(err, ErrEmptyItinerary):
		RespondError(c, http.StatusBadRequest, "Select at least one place before finding a route")
	case errors.Is(err, ErrInvalidTripWindow):
		RespondError(c, http.StatusBadRequest, "Trip end date must not be before the start date")
	case errors.Is(err, ErrMissingCoordinates):
		RespondError(c, http.StatusBadRequest, "Destination coordinates are missing")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.As(err, &optErr):
		RespondError(c, http.StatusBadGateway, optErr.Message)
	case errors.Is(err, ErrMalformedRoute):
		RespondError(c, http.StatusBadGateway, "Route optimizer returned an unusable response")
	case errors.Is(err, ErrOptimizerUnreachable):
		RespondError(c, http.StatusBadGateway, "Route optimizer is unavailable, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
