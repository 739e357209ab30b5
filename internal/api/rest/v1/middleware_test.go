//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareRouter(middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/probe", middleware, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, StatusResponse{Status: "ok"})
	})
	return r
}

func TestRequireJSON_RejectsMissingContentType(t *testing.T) {
	r := newMiddlewareRouter(RequireJSON())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/probe", bytes.NewBufferString(`{"a": 1}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect body type, should be a json")
}

func TestRequireJSON_AcceptsJSONContentType(t *testing.T) {
	r := newMiddlewareRouter(RequireJSON())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/probe", bytes.NewBufferString(`{"a": 1}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_GeneratesHeader(t *testing.T) {
	r := newMiddlewareRouter(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/probe", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsClientHeader(t *testing.T) {
	r := newMiddlewareRouter(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/probe", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", w.Header().Get(RequestIDHeader))
}

func TestEchoHandler_MirrorsBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewEchoHandler()
	r.POST("/echo", RequireJSON(), handler.Echo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/echo", bytes.NewBufferString(`{"greeting": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"greeting": "hello"}`, w.Body.String())
}

func TestEchoHandler_RejectsInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewEchoHandler()
	r.POST("/echo", RequireJSON(), handler.Echo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/echo", bytes.NewBufferString(`{"greeting": `))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request body must be valid json")
}
