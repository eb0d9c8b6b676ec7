package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	t.Run("flattens nested errors", func(t *testing.T) {
		err := validation.Errors{
			"title":    errors.New("cannot be blank"),
			"features": validation.Errors{"0": errors.New("the length must be no more than 255")},
			"ignored":  nil,
		}
		fields, ok := FieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, map[string]string{
			"title":      "cannot be blank",
			"features.0": "the length must be no more than 255",
		}, fields)
	})

	t.Run("non validation error", func(t *testing.T) {
		_, ok := FieldErrors(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestDoneNegotiates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/inquiry", func(c *gin.Context) {
		Done(c, http.StatusCreated, "/", "Your inquiry has been sent successfully!", nil)
	})

	t.Run("json client gets envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/inquiry", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Your inquiry has been sent successfully!", body.Message)
	})

	t.Run("form client is redirected with flash", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/inquiry", strings.NewReader(url.Values{"message": {"hi"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
	})
}

func TestInvalidRedirectsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", func(c *gin.Context) {
		Invalid(c, map[string]string{"email": "must be a valid email address"}, OldInput(c))
	})

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=Ana&email=nope"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/contact#form")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact#form", w.Header().Get("Location"))

	jsonReq := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"email":"nope"}`))
	jsonReq.Header.Set("Content-Type", "application/json")
	jw := httptest.NewRecorder()
	router.ServeHTTP(jw, jsonReq)

	assert.Equal(t, http.StatusUnprocessableEntity, jw.Code)
	assert.Contains(t, jw.Body.String(), "must be a valid email address")
}
