//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/someilay/QuasarTest/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMetricsHandler_RecentRegistrations_DefaultWindow(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	mockMetricsService.On("CountRegisteredSince", mock.Anything, 0).Return(int64(3), nil)

	w := performRequest(t, handler.RecentRegistrations, "GET", "/metrics/users/recent-registrations", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": 3}`, w.Body.String())
	mockMetricsService.AssertExpectations(t)
}

func TestMetricsHandler_RecentRegistrations_ExplicitWindow(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	mockMetricsService.On("CountRegisteredSince", mock.Anything, 30).Return(int64(12), nil)

	w := performRequest(t, handler.RecentRegistrations, "GET", "/metrics/users/recent-registrations?days=30", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": 12}`, w.Body.String())
	mockMetricsService.AssertExpectations(t)
}

func TestMetricsHandler_RecentRegistrations_InvalidWindow(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	w := performRequest(t, handler.RecentRegistrations, "GET", "/metrics/users/recent-registrations?days=-1", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMetricsService.AssertNotCalled(t, "CountRegisteredSince")
}

func TestMetricsHandler_LongestNames_Success(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	mockMetricsService.
		On("LongestNames", mock.Anything, 2).
		Return([]*users.User{newTestUser()}, nil)

	w := performRequest(t, handler.LongestNames, "GET", "/metrics/users/longest-names?top=2", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	mockMetricsService.AssertExpectations(t)
}

func TestMetricsHandler_LongestNames_EmptyTable(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	mockMetricsService.On("LongestNames", mock.Anything, 0).Return([]*users.User{}, nil)

	w := performRequest(t, handler.LongestNames, "GET", "/metrics/users/longest-names", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMetricsHandler_LongestNames_InvalidTop(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	w := performRequest(t, handler.LongestNames, "GET", "/metrics/users/longest-names?top=abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMetricsService.AssertNotCalled(t, "LongestNames")
}

func TestMetricsHandler_EmailDomainShare_Success(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	mockMetricsService.On("EmailDomainShare", mock.Anything, "gmail.com").Return(0.4, nil)

	w := performRequest(t, handler.EmailDomainShare, "GET", "/metrics/users/email-domain?domain=gmail.com", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": 0.4}`, w.Body.String())
	mockMetricsService.AssertExpectations(t)
}

func TestMetricsHandler_EmailDomainShare_MissingDomain(t *testing.T) {
	mockMetricsService := new(MockUserMetricsService)
	handler := NewMetricsHandler(mockMetricsService)

	w := performRequest(t, handler.EmailDomainShare, "GET", "/metrics/users/email-domain", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "domain must be specified")
	mockMetricsService.AssertNotCalled(t, "EmailDomainShare")
}
