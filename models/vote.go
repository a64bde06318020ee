package models

import (
	"time"
)

type VoteType int

const (
	VoteLike    VoteType = 1
	VoteDislike VoteType = -1
)

// TargetType discriminates the polymorphic (target_type, target_id) pair on
// Vote and Activity. Resolution must fail on an unrecognized tag.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
	TargetUser     TargetType = "user"
)

type Vote struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	UserID     uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_user_target"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type       VoteType   `json:"type" gorm:"not null"`
	TargetType TargetType `json:"target_type" gorm:"not null;uniqueIndex:idx_votes_user_target"`
	TargetID   uint       `json:"target_id" gorm:"not null;uniqueIndex:idx_votes_user_target"`
	CreatedAt  time.Time  `json:"created_at"`
}
