package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techconnect/backend/internal/usecase/discover"
)

type DiscoverHandler struct {
	discoverUseCase *discover.DiscoverUseCase
}

func NewDiscoverHandler(discoverUseCase *discover.DiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{
		discoverUseCase: discoverUseCase,
	}
}

// Discover handles GET /events/:event_id/discover
// @Summary Discover people
// @Description Ranked recommendation list for the event, optionally filtered
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Param filter query string false "Category filter: all, developers, designers, investors"
// @Param q query string false "Search over name, role and company"
// @Success 200 {array} discover.MatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/discover [get]
func (h *DiscoverHandler) Discover(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	filter := c.DefaultQuery("filter", discover.FilterAll)
	if !discover.ValidFilter(filter) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "unknown filter",
		})
		return
	}

	results, err := h.discoverUseCase.Discover(
		c.Request.Context(),
		userID.(string),
		c.Param("event_id"),
		filter,
		c.Query("q"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to build recommendations",
		})
		return
	}

	c.JSON(http.StatusOK, results)
}
