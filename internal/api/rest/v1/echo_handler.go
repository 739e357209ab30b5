package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EchoHandler defines the interface for the echo endpoint
type EchoHandler interface {
	Echo(ctx *gin.Context)
}

type echoHandler struct{}

// NewEchoHandler creates a new EchoHandler
func NewEchoHandler() EchoHandler {
	return &echoHandler{}
}

// Echo handles the POST request that mirrors the request body back to the caller
// @Summary Echo the JSON request body
// @Description Return the request payload verbatim; useful as a connectivity check.
// @Tags Echo
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /echo [post]
func (handler *echoHandler) Echo(ctx *gin.Context) {
	data, err := ctx.GetRawData()
	if err != nil || !json.Valid(data) {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "request body must be valid json"})
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
