package v1

import (
	"fmt"
	"net/http"

	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MetricsHandler defines the interface for handling user metrics operations
type MetricsHandler interface {
	RecentRegistrations(ctx *gin.Context)
	LongestNames(ctx *gin.Context)
	EmailDomainShare(ctx *gin.Context)
}

// metricsHandler struct holds the services
type metricsHandler struct {
	metricsService users.UserMetricsService
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(metricsService users.UserMetricsService) MetricsHandler {
	return &metricsHandler{
		metricsService: metricsService,
	}
}

// RecentRegistrations handles the GET request for the recent registration count
// @Summary Count recent registrations
// @Description Return the number of users registered within the given number of days (default 7).
// @Tags Metrics
// @Produce json
// @Param days query int false "Window in days"
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse
// @Router /metrics/users/recent-registrations [get]
func (handler *metricsHandler) RecentRegistrations(ctx *gin.Context) {
	days := 0
	if raw := ctx.Query("days"); len(raw) > 0 {
		days = utils.ConvertToInt(raw)
		if days <= 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "days must be a positive integer"})
			return
		}
	}

	count, err := handler.metricsService.CountRegisteredSince(ctx, days)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("metrics query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Result: count})
}

// LongestNames handles the GET request for users with the longest usernames
// @Summary List users with the longest usernames
// @Description Return the top users ordered by username length descending (default 5).
// @Tags Metrics
// @Produce json
// @Param top query int false "Number of users to return"
// @Success 200 {array} UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /metrics/users/longest-names [get]
func (handler *metricsHandler) LongestNames(ctx *gin.Context) {
	top := 0
	if raw := ctx.Query("top"); len(raw) > 0 {
		top = utils.ConvertToInt(raw)
		if top <= 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "top must be a positive integer"})
			return
		}
	}

	userList, err := handler.metricsService.LongestNames(ctx, top)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("metrics query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []UserResponse{}
	for _, user := range userList {
		listResponse = append(listResponse, NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// EmailDomainShare handles the GET request for the email domain fraction
// @Summary Fraction of users with emails in a domain
// @Description Return the fraction of users whose email ends with the given domain suffix.
// @Tags Metrics
// @Produce json
// @Param domain query string true "Email domain suffix"
// @Success 200 {object} FractionResponse
// @Failure 400 {object} ErrorResponse
// @Router /metrics/users/email-domain [get]
func (handler *metricsHandler) EmailDomainShare(ctx *gin.Context) {
	domain := ctx.Query("domain")
	if domain == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "domain must be specified"})
		return
	}

	share, err := handler.metricsService.EmailDomainShare(ctx, domain)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("metrics query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, FractionResponse{Result: share})
}
