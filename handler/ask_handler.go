package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	services "github.com/lehoangvu/docchat-be/service"
	"github.com/lehoangvu/docchat-be/types"
)

type AskHandler struct {
	session *services.SessionService
	logger  *zap.Logger
}

func NewAskHandler(session *services.SessionService, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		session: session,
		logger:  logger,
	}
}

func (h *AskHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.StatusResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	answer, err := h.session.Ask(c.Request.Context(), req.Question)
	if err != nil {
		// Every failure keeps the {success:false, message} shape the
		// chat UI expects; only the status code reflects the kind.
		status := http.StatusBadRequest
		var providerErr *types.ProviderError
		if errors.As(err, &providerErr) {
			status = http.StatusBadGateway
		}
		c.JSON(status, types.StatusResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.AskResponse{
		Success: true,
		Answer:  answer,
	})
}
