package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user-related operations
type UserHandler interface {
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Delete(ctx *gin.Context)
	RecordActivity(ctx *gin.Context)
}

// userHandler struct holds the services
type userHandler struct {
	userService     users.UserService
	activityService activities.ActivityService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, activityService activities.ActivityService) UserHandler {
	return &userHandler{
		userService:     userService,
		activityService: activityService,
	}
}

// Create handles the POST request to store a new user
// @Summary Create a user
// @Description Store a new user; the id may be supplied explicitly, the registration date defaults to now.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "User Data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (handler *userHandler) Create(ctx *gin.Context) {
	var request CreateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	user := &users.User{
		Username:         request.Username,
		Email:            request.Email,
		RegistrationDate: time.Now(),
	}
	if request.ID != nil {
		user.ID = *request.ID
	}
	if request.RegistrationDate != nil {
		user.RegistrationDate = *request.RegistrationDate
	}

	created, err := handler.userService.Create(ctx, user)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating user: %v", err.Error())
		if errors.Is(err, users.ErrDuplicateID) {
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(created))
}

// GetByID handles the GET request to retrieve a user by id
// @Summary Retrieve a user by id
// @Description Fetch a user by id. With predict=true the response also carries the probability that the user keeps up their activity.
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Param predict query bool false "Include activity probability"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID := utils.ConvertToInt64(ctx.Param("id"))
	if userID <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "id must be a positive integer"})
		return
	}

	user, err := handler.userService.GetByID(ctx, userID)
	if err != nil {
		handler.writeLookupError(ctx, err)
		return
	}

	response := NewUserResponse(user)

	if ctx.Query("predict") == "true" {
		prob, err := handler.activityService.RetentionProbability(ctx, user.ID, user.RegistrationDate, time.Now())
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("error predicting activity: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		response.ActivityProb = &prob
	}

	ctx.JSON(http.StatusOK, response)
}

// List handles the GET request to look up or page through users
// @Summary Look up or list users
// @Description With username or email set, return the single matching user. Otherwise return a page of users ordered by id.
// @Tags User
// @Produce json
// @Param username query string false "Exact username"
// @Param email query string false "Exact email"
// @Param page query int false "Page number (default 0)"
// @Param perPage query int false "Page size (default 10, max 100)"
// @Success 200 {array} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users [get]
func (handler *userHandler) List(ctx *gin.Context) {
	username := ctx.Query("username")
	email := ctx.Query("email")

	if username != "" || email != "" {
		user, err := handler.userService.Lookup(ctx, username, email)
		if err != nil {
			handler.writeLookupError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, NewUserResponse(user))
		return
	}

	query := users.NewUserQuery()

	if page := ctx.Query("page"); len(page) > 0 {
		query.Page = utils.ConvertToInt(page)
	}
	if perPage := ctx.Query("perPage"); len(perPage) > 0 {
		query.PerPage = utils.ConvertToInt(perPage)
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	userList, err := handler.userService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []UserResponse{}
	for _, user := range userList {
		listResponse = append(listResponse, NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateByID handles the PATCH request to change a user's username or email
// @Summary Update a user
// @Description Update the username and/or email of an existing user; omitted fields stay unchanged.
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param requestBody body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [patch]
func (handler *userHandler) UpdateByID(ctx *gin.Context) {
	userID := utils.ConvertToInt64(ctx.Param("id"))
	if userID <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "id must be a positive integer"})
		return
	}

	var request UpdateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var username, email string
	if request.Username != nil {
		username = *request.Username
	}
	if request.Email != nil {
		email = *request.Email
	}

	updated, err := handler.userService.UpdateByID(ctx, userID, username, email)
	if err != nil {
		handler.writeLookupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(updated))
}

// DeleteByID handles the DELETE request to remove a user by id
// @Summary Delete a user by id
// @Description Delete a user together with their activity events. Deleting a missing user is not an error.
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/{id} [delete]
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	userID := utils.ConvertToInt64(ctx.Param("id"))
	if userID <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "id must be a positive integer"})
		return
	}

	if err := handler.userService.DeleteByID(ctx, userID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting user: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Delete handles the DELETE request to remove users by username or email
// @Summary Delete users by selector
// @Description Delete all users matching the given username or email together with their activity events.
// @Tags User
// @Produce json
// @Param username query string false "Exact username"
// @Param email query string false "Exact email"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users [delete]
func (handler *userHandler) Delete(ctx *gin.Context) {
	username := ctx.Query("username")
	email := ctx.Query("email")

	if username == "" && email == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "at least one of username or email must be specified"})
		return
	}

	if err := handler.userService.Delete(ctx, username, email); err != nil {
		handler.writeLookupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// RecordActivity handles the POST request to store an activity event for a user
// @Summary Record a user activity event
// @Description Store a visit of the given user; the date defaults to now.
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param requestBody body RecordActivityRequest true "Activity Data"
// @Success 201 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/activities [post]
func (handler *userHandler) RecordActivity(ctx *gin.Context) {
	userID := utils.ConvertToInt64(ctx.Param("id"))
	if userID <= 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "id must be a positive integer"})
		return
	}

	var request RecordActivityRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid activity data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}

	activity, err := handler.activityService.Record(ctx, userID, date)
	if err != nil {
		handler.writeLookupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewActivityResponse(activity))
}

// writeLookupError maps service errors onto 404 for missing users and 400
// for everything else.
func (handler *userHandler) writeLookupError(ctx *gin.Context, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = err.Error()

	if errors.Is(err, users.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}
	ctx.JSON(http.StatusBadRequest, errorResponse)
}
