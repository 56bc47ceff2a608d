package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/usecase/messaging"
)

type MessageHandler struct {
	messagingUseCase *messaging.MessagingUseCase
}

func NewMessageHandler(messagingUseCase *messaging.MessagingUseCase) *MessageHandler {
	return &MessageHandler{
		messagingUseCase: messagingUseCase,
	}
}

// Send handles POST /events/:event_id/messages/:partner_id
// @Summary Send a message
// @Description Send a message to another attendee, subject to the daily cap
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param partner_id path string true "Receiver user ID"
// @Param request body messaging.SendRequest true "Message body"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/messages/{partner_id} [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req messaging.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}
	req.ReceiverID = c.Param("partner_id")

	msg, err := h.messagingUseCase.Send(c.Request.Context(), c.Param("event_id"), userID.(string), &req)
	if err != nil {
		if errors.Is(err, domain.ErrSelfMessage) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot message yourself",
			})
			return
		}
		if errors.Is(err, domain.ErrDailyLimitReached) {
			c.JSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "daily message limit reached for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to send message",
		})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// Thread handles GET /events/:event_id/messages/:partner_id
// @Summary Get a conversation thread
// @Description Messages with one partner, oldest first. Incoming messages are marked read.
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Param partner_id path string true "Partner user ID"
// @Success 200 {array} messaging.ThreadMessage
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/messages/{partner_id} [get]
func (h *MessageHandler) Thread(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	thread, err := h.messagingUseCase.Thread(c.Request.Context(), c.Param("event_id"), userID.(string), c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load thread",
		})
		return
	}

	c.JSON(http.StatusOK, thread)
}

// MarkRead handles POST /events/:event_id/messages/:partner_id/read
// @Summary Mark a thread read
// @Description Mark all messages from the partner as read
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Param partner_id path string true "Partner user ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/messages/{partner_id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	err := h.messagingUseCase.MarkThreadRead(c.Request.Context(), c.Param("event_id"), userID.(string), c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to mark thread read",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "thread marked read",
	})
}

// Conversations handles GET /events/:event_id/conversations
// @Summary List conversations
// @Description Conversation summaries for the event, newest activity first
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} messaging.Conversation
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/conversations [get]
func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	convs, err := h.messagingUseCase.Conversations(c.Request.Context(), c.Param("event_id"), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list conversations",
		})
		return
	}

	c.JSON(http.StatusOK, convs)
}

// Icebreakers handles GET /events/:event_id/icebreakers/:partner_id
// @Summary Suggest icebreakers
// @Description Short opening lines for a conversation with the partner
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Param partner_id path string true "Partner user ID"
// @Success 200 {object} map[string][]string
// @Failure 401 {object} ErrorResponse
// @Router /events/{event_id}/icebreakers/{partner_id} [get]
func (h *MessageHandler) Icebreakers(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	suggestions := h.messagingUseCase.SuggestIcebreakers(c.Request.Context(), c.Param("event_id"), userID.(string), c.Param("partner_id"))

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
	})
}
