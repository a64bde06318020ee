package repositories

import (
	"qa-forum/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	Cast(vote *models.Vote) error
	DislikedQuestionIDs(userID uint) ([]uint, error)
	GetForTarget(userID uint, targetType models.TargetType, targetID uint) (*models.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Cast inserts the vote and adjusts the target's denormalized rating_total in
// the same transaction. A duplicate (user, target) insert fails with
// gorm.ErrDuplicatedKey before the counter is touched; the counter update is
// an atomic in-database increment so concurrent votes never lose updates.
func (r *voteRepository) Cast(vote *models.Vote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return err
		}

		delta := int(vote.Type)
		switch vote.TargetType {
		case models.TargetQuestion:
			return tx.Model(&models.Question{}).
				Where("id = ?", vote.TargetID).
				UpdateColumn("rating_total", gorm.Expr("rating_total + ?", delta)).Error
		case models.TargetAnswer:
			return tx.Model(&models.Answer{}).
				Where("id = ?", vote.TargetID).
				UpdateColumn("rating_total", gorm.Expr("rating_total + ?", delta)).Error
		default:
			return models.ErrUnknownTargetType
		}
	})
}

func (r *voteRepository) DislikedQuestionIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Vote{}).
		Where("user_id = ? AND type = ? AND target_type = ?", userID, models.VoteDislike, models.TargetQuestion).
		Pluck("target_id", &ids).Error
	return ids, err
}

func (r *voteRepository) GetForTarget(userID uint, targetType models.TargetType, targetID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		First(&vote).Error
	return &vote, err
}
