package handlers

import (
	"errors"

	"qa-forum/helper"
	"qa-forum/models"
	"qa-forum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteHandler struct {
	voteService services.VoteService
	Helper      *helper.HTTPHelper
}

func NewVoteHandler(voteService services.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
		Helper:      &helper.HTTPHelper{},
	}
}

// CastVote records a like or dislike. A repeat vote on the same target is a
// conflict, never a silent success.
func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	vote, err := h.voteService.CastVote(req, userID.(uint))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyVoted):
			h.Helper.SendConflictError(c, "Already voted on this target", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Vote target not found", h.Helper.EmptyJsonMap())
		case errors.Is(err, models.ErrUnknownTargetType):
			h.Helper.SendBadRequest(c, "Unknown vote target type", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, "Error ", err.Error())
		}
		return
	}

	h.Helper.SendSuccess(c, "Vote recorded", vote)
}
