package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is a per-field validation failure keyed by request parameter.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// Body is the standard API response envelope.
type Body struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// NoContent sends 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends 400 with a business-rule violation message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Message: msg})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Body{Success: false, Message: msg})
}

// Forbidden sends 403.
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Body{Success: false, Message: msg})
}

// NotFound sends 404.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Body{Success: false, Message: msg})
}

// Conflict sends 409.
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, Body{Success: false, Message: msg})
}

// ValidationFailed sends 422 with per-field errors.
func ValidationFailed(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, Body{Success: false, Message: "validation failed", Errors: fields})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context, msg string) {
	c.JSON(http.StatusTooManyRequests, Body{Success: false, Message: msg})
}

// Internal sends 500.
func Internal(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Message: msg})
}

// BindingErrors converts a gin binding error into per-field errors so clients
// can map them onto the matching input slots. Non-validator errors yield nil.
func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "invalid value"
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email"
		case "min":
			msg = "is too short"
		case "max":
			msg = "is too long"
		case "gte":
			msg = "must be at least " + fe.Param()
		}
		out = append(out, FieldError{Param: fe.Field(), Msg: msg})
	}
	return out
}

// Invalid sends 422 with mapped field errors when err comes from binding
// validation, otherwise 400 with a generic message.
func Invalid(c *gin.Context, err error) {
	if fields := BindingErrors(err); len(fields) > 0 {
		ValidationFailed(c, fields)
		return
	}
	BadRequest(c, "invalid request: "+err.Error())
}
