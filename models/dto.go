package models

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateQuestionRequest struct {
	Title   string   `json:"title" binding:"required,min=1,max=100"`
	Content string   `json:"content" binding:"required,max=4000"`
	Tags    []string `json:"tags"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

type CastVoteRequest struct {
	TargetType TargetType `json:"target_type" binding:"required"`
	TargetID   uint       `json:"target_id" binding:"required"`
	Type       VoteType   `json:"type" binding:"required"`
}

type UpdateSettingsRequest struct {
	DisplayName        *string `json:"display_name"`
	Avatar             *string `json:"avatar"`
	PageSizePreference *int    `json:"page_size_preference"`
}

type QuestionListParams struct {
	Query    string `form:"query"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page-size"`
}

// QuestionListItem is a Question annotated with its live answer count and the
// id of its best answer (correct-flagged first, then highest rating).
type QuestionListItem struct {
	Question
	AnswerCount  int64 `json:"answer_count"`
	BestAnswerID *uint `json:"best_answer_id"`
}

// FeedItem is one formatted entry of a user's recent-activity feed.
type FeedItem struct {
	Description string `json:"description"`
	LinkURL     string `json:"link_url"`
}
