package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/usecase/event"
)

type EventHandler struct {
	eventUseCase *event.EventUseCase
}

func NewEventHandler(eventUseCase *event.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

// List handles GET /events
// @Summary List events
// @Description All events, soonest first
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list events",
		})
		return
	}

	c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:event_id
// @Summary Get an event
// @Description One event with its participant count
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	ev, participants, err := h.eventUseCase.Get(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get event",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":             ev,
		"participant_count": participants,
	})
}

// Join handles POST /events/:event_id/join
// @Summary Join an event
// @Description Join an event by slug or ID. Safe to repeat.
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event slug or ID"
// @Success 200 {object} event.JoinResult
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/join [post]
func (h *EventHandler) Join(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	result, err := h.eventUseCase.Join(c.Request.Context(), c.Param("event_id"), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to join event",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
