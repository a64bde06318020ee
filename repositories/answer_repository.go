package repositories

import (
	"qa-forum/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *models.Answer) error
	GetByID(id uint) (*models.Answer, error)
	GetByQuestion(questionID uint) ([]models.Answer, error)
	MarkCorrect(id uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) GetByID(id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Preload("Question").First(&answer, id).Error
	return &answer, err
}

func (r *answerRepository) GetByQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Where("question_id = ? AND is_active = ?", questionID, true).
		Preload("Author.Profile").
		Order("is_correct desc").
		Order("rating_total desc").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) MarkCorrect(id uint) error {
	return r.db.Model(&models.Answer{}).
		Where("id = ?", id).
		Update("is_correct", true).Error
}
