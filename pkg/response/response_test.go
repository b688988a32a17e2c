package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, gin.H{"id": "abc"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Message)
}

func TestValidationFailedEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationFailed(c, []FieldError{{Param: "email", Msg: "must be a valid email"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Param)
}

func TestBindingErrorsMapsTags(t *testing.T) {
	type form struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}
	err := validator.New().Struct(form{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	fields := BindingErrors(err)
	require.Len(t, fields, 2)
	byParam := map[string]string{}
	for _, f := range fields {
		byParam[f.Param] = f.Msg
	}
	assert.Equal(t, "must be a valid email", byParam["Email"])
	assert.Equal(t, "is too short", byParam["Password"])
}

func TestBindingErrorsIgnoresPlainErrors(t *testing.T) {
	assert.Nil(t, BindingErrors(errors.New("unexpected EOF")))
}

func TestInvalidFallsBackTo400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Invalid(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
