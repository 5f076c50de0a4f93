package handlers

import (
	"net/http"
	"strconv"

	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/funnelbot/leadintake/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *application.AnalyticsService
}

func NewAnalyticsHandler(service *application.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetFunnel(c *gin.Context) {
	stats, err := h.service.Funnel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetSubmissionStats(c *gin.Context) {
	stats, err := h.service.SubmissionStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) ListSubmissions(c *gin.Context) {
	params := repository.SubmissionQueryParams{}
	if v := c.Query("attribution_type"); v != "" {
		params.AttributionType = &v
	}
	if v := c.Query("attribution_value"); v != "" {
		params.AttributionValue = &v
	}
	if v := c.Query("processed"); v != "" {
		processed := v == "true"
		params.Processed = &processed
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid limit"})
			return
		}
		params.Limit = limit
	}

	subs, err := h.service.RecentSubmissions(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *AnalyticsHandler) MarkProcessed(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	if err := h.service.MarkProcessed(userID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "submission marked processed"})
}

func (h *AnalyticsHandler) GetReferralCount(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	count, err := h.service.ReferralCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "referral_count": count})
}

func (h *AnalyticsHandler) ListActions(c *gin.Context) {
	params := repository.ActionQueryParams{}
	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
			return
		}
		params.UserID = &userID
	}
	if v := c.Query("type"); v != "" {
		params.ActionType = &v
	}
	if v := c.Query("session_id"); v != "" {
		params.SessionID = &v
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid limit"})
			return
		}
		params.Limit = limit
	}

	actions, err := h.service.Actions(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, actions)
}
