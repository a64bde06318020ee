package handlers

import (
	"errors"
	"strconv"

	"qa-forum/helper"
	"qa-forum/models"
	"qa-forum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const recentActivityCount = 10

type UserHandler struct {
	userService services.UserService
	feedService services.FeedService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, feedService services.FeedService) *UserHandler {
	return &UserHandler{
		userService: userService,
		feedService: feedService,
		Helper:      &helper.HTTPHelper{},
	}
}

// GetUser serves the public profile page: the user's content counters plus
// their formatted recent-activity feed.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	detail, err := h.userService.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	feed, err := h.feedService.RecentActivity(uint(id), recentActivityCount)
	if err != nil {
		// an unknown activity type is a defect, not something to mask
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), 500, `internalError`)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"user":            detail,
		"recent_activity": feed,
	})
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	profile, err := h.userService.UpdateSettings(userID.(uint), req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Settings updated", profile)
}
