package models

import (
	"time"
)

type Question struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
	// Authorship is cleared, not cascaded, when the author is deleted.
	AuthorID    *uint     `json:"author_id"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text"`
	ViewCount   int       `json:"view_count" gorm:"default:0"`
	RatingTotal int       `json:"rating_total" gorm:"default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	Tags        []Tag     `json:"tags" gorm:"many2many:question_tags;"`
	Answers     []Answer  `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
