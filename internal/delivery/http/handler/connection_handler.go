package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/usecase/connection"
	"github.com/techconnect/backend/internal/usecase/discover"
)

type ConnectionHandler struct {
	connectionUseCase *connection.ConnectionUseCase
	discoverUseCase   *discover.DiscoverUseCase
}

func NewConnectionHandler(
	connectionUseCase *connection.ConnectionUseCase,
	discoverUseCase *discover.DiscoverUseCase,
) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUseCase: connectionUseCase,
		discoverUseCase:   discoverUseCase,
	}
}

// RequestConnectionRequest names the receiver of a connection request.
type RequestConnectionRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
}

// Request handles POST /events/:event_id/connections
// @Summary Request a connection
// @Description Send a connection request to another attendee
// @Tags connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param request body RequestConnectionRequest true "Receiver"
// @Success 200 {object} connection.RequestResult
// @Success 201 {object} connection.RequestResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/connections [post]
func (h *ConnectionHandler) Request(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req RequestConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	eventID := c.Param("event_id")
	result, err := h.connectionUseCase.Request(c.Request.Context(), eventID, userID.(string), req.ReceiverID)
	if err != nil {
		if errors.Is(err, domain.ErrSelfConnection) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot connect with yourself",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to request connection",
		})
		return
	}

	if result.AlreadyExisted {
		c.JSON(http.StatusOK, result)
		return
	}

	// The discover list shows connection status, so the cached copy for
	// this viewer is stale now.
	h.discoverUseCase.InvalidateFor(c.Request.Context(), userID.(string), eventID)

	c.JSON(http.StatusCreated, result)
}

// Accept handles POST /events/:event_id/connections/:connection_id/accept
// @Summary Accept a connection
// @Description Accept an incoming connection request
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Param connection_id path string true "Connection ID"
// @Success 200 {object} domain.Connection
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/connections/{connection_id}/accept [post]
func (h *ConnectionHandler) Accept(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	conn, err := h.connectionUseCase.Accept(c.Request.Context(), c.Param("connection_id"), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrConnectionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "connection not found",
			})
			return
		}
		if errors.Is(err, domain.ErrNotConnectionReceiver) {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "only the receiver can accept",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to accept connection",
		})
		return
	}

	h.discoverUseCase.InvalidateFor(c.Request.Context(), userID.(string), c.Param("event_id"))

	c.JSON(http.StatusOK, conn)
}

// List handles GET /events/:event_id/connections
// @Summary List connections
// @Description List the current user's connections in the event
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} connection.ConnectionView
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/connections [get]
func (h *ConnectionHandler) List(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	views, err := h.connectionUseCase.List(c.Request.Context(), c.Param("event_id"), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list connections",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
