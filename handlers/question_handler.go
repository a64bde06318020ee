package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"qa-forum/config"
	"qa-forum/helper"
	"qa-forum/middleware"
	"qa-forum/models"
	"qa-forum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	questionService services.QuestionService
	sidebarService  services.SidebarService
	cfg             config.Config
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService, sidebarService services.SidebarService, cfg config.Config) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		sidebarService:  sidebarService,
		cfg:             cfg,
		Helper:          &helper.HTTPHelper{},
	}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	question, err := h.questionService.CreateQuestion(req, userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Question created successfully", question)
}

// GetQuestions lists active questions newest first, optionally filtered by
// the `query` search parameter.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var params models.QuestionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	pageSize := middleware.PageSize(c, h.cfg.DefaultPageSize)

	questions, total, err := h.questionService.GetNewQuestions(params, pageSize)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.sendListing(c, questions, total, params.Page, pageSize)
}

// GetHotQuestions ranks recent questions by rating; the lookback window comes
// from the `days` parameter. Questions the viewer disliked are demoted to the
// end of the listing.
func (h *QuestionHandler) GetHotQuestions(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := middleware.PageSize(c, h.cfg.DefaultPageSize)
	days := queryInt(c, "days", h.cfg.HotLookbackDays)

	viewerID := middleware.ViewerID(c)

	questions, total, err := h.questionService.GetHotQuestions(days, viewerID, page, pageSize)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.sendListing(c, questions, total, page, pageSize)
}

// GetTaggedQuestions filters to questions carrying ALL of the `~`-delimited
// tag slugs in the path. Unknown slugs yield an empty listing, not an error.
func (h *QuestionHandler) GetTaggedQuestions(c *gin.Context) {
	rawTags := c.Param("tags")
	var slugs []string
	for _, slug := range strings.Split(rawTags, "~") {
		if trimmed := strings.TrimSpace(slug); trimmed != "" {
			slugs = append(slugs, trimmed)
		}
	}

	page := queryInt(c, "page", 1)
	pageSize := middleware.PageSize(c, h.cfg.DefaultPageSize)

	questions, total, err := h.questionService.GetTaggedQuestions(slugs, page, pageSize)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.sendListing(c, questions, total, page, pageSize)
}

func (h *QuestionHandler) GetDiscussion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	question, err := h.questionService.GetDiscussion(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Question not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"question": question,
		"sidebar":  h.sidebar(),
	})
}

func (h *QuestionHandler) sendListing(c *gin.Context, questions []models.QuestionListItem, total int64, page, pageSize int) {
	h.Helper.SendSuccess(c, "Success", gin.H{
		"questions":  questions,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, pageSize, page, int(total)),
		"sidebar":    h.sidebar(),
	})
}

// sidebar fetches the shared page furniture. Failures degrade to empty
// sections; the cache and its sources are never a correctness dependency for
// a listing.
func (h *QuestionHandler) sidebar() gin.H {
	members, err := h.sidebarService.BestMembers()
	if err != nil {
		log.Println("sidebar: best members unavailable:", err)
	}
	tags, err := h.sidebarService.PopularTags()
	if err != nil {
		log.Println("sidebar: popular tags unavailable:", err)
	}

	return gin.H{
		"best_members": members,
		"popular_tags": tags,
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
