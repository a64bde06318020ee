package models

import (
	"time"
)

type User struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	Login     string       `json:"login" gorm:"uniqueIndex;not null"`
	Email     string       `json:"email" gorm:"uniqueIndex;not null"`
	Password  string       `json:"-" gorm:"not null"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	IsStaff   bool         `json:"is_staff" gorm:"default:false"`
	Profile   *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type UserProfile struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	UserID      uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Rating      int    `json:"rating" gorm:"default:0"`
	// Preferred listing page size; nil means no preference stored.
	PageSizePreference *int      `json:"page_size_preference"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserDetail is a User annotated with content counters for the profile page.
type UserDetail struct {
	User
	TotalQuestionsAsked int64 `json:"total_questions_asked"`
	TotalAnswersPosted  int64 `json:"total_answers_posted"`
}
