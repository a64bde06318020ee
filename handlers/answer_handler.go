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

type AnswerHandler struct {
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		Helper:        &helper.HTTPHelper{},
	}
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	userID, _ := c.Get("user_id")
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	answer, err := h.answerService.CreateAnswer(uint(questionID), req, userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Question not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Answer created successfully", answer)
}

func (h *AnswerHandler) MarkCorrect(c *gin.Context) {
	userID, _ := c.Get("user_id")
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid answer ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.answerService.MarkCorrect(uint(answerID), userID.(uint)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Answer not found", h.Helper.EmptyJsonMap())
		case errors.Is(err, models.ErrUnauthorized):
			h.Helper.SendUnauthorizedError(c, "Only the question author can mark an answer correct", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, "Error ", err.Error())
		}
		return
	}

	h.Helper.SendSuccess(c, "Answer marked correct", h.Helper.EmptyJsonMap())
}
