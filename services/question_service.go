package services

import (
	"errors"
	"fmt"
	"time"

	"qa-forum/helper"
	"qa-forum/models"
	"qa-forum/repositories"

	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req models.CreateQuestionRequest, userID uint) (*models.Question, error)
	GetDiscussion(id uint) (*models.Question, error)
	GetNewQuestions(params models.QuestionListParams, pageSize int) ([]models.QuestionListItem, int64, error)
	GetHotQuestions(lookbackDays int, viewerID *uint, page, pageSize int) ([]models.QuestionListItem, int64, error)
	GetTaggedQuestions(tagSlugs []string, page, pageSize int) ([]models.QuestionListItem, int64, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
	tagRepo      repositories.TagRepository
	voteRepo     repositories.VoteRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, tagRepo repositories.TagRepository, voteRepo repositories.VoteRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
		voteRepo:     voteRepo,
	}
}

func (s *questionService) CreateQuestion(req models.CreateQuestionRequest, userID uint) (*models.Question, error) {
	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(req.Title)
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		AuthorID: &userID,
		Slug:     slug,
		Title:    req.Title,
		Content:  req.Content,
		IsActive: true,
		Tags:     tags,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(question.ID)
}

// GetDiscussion loads the question detail page and bumps its view counter.
func (s *questionService) GetDiscussion(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetDiscussion(id)
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	question.ViewCount++

	return question, nil
}

func (s *questionService) GetNewQuestions(params models.QuestionListParams, pageSize int) ([]models.QuestionListItem, int64, error) {
	return s.questionRepo.GetList(params, pageSize)
}

// GetHotQuestions ranks recent questions by rating then recency. When the
// viewer is known, questions they disliked are demoted to the end of the
// listing rather than excluded.
func (s *questionService) GetHotQuestions(lookbackDays int, viewerID *uint, page, pageSize int) ([]models.QuestionListItem, int64, error) {
	cutoff := time.Now().AddDate(0, 0, -lookbackDays)

	var dislikedIDs []uint
	if viewerID != nil {
		var err error
		dislikedIDs, err = s.voteRepo.DislikedQuestionIDs(*viewerID)
		if err != nil {
			return nil, 0, err
		}
	}

	return s.questionRepo.GetHotList(cutoff, dislikedIDs, page, pageSize)
}

func (s *questionService) GetTaggedQuestions(tagSlugs []string, page, pageSize int) ([]models.QuestionListItem, int64, error) {
	return s.questionRepo.GetTagFilteredList(tagSlugs, page, pageSize)
}

func (s *questionService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{
					Name: name,
					Slug: helper.Slugify(name),
				}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}

// uniqueSlug probes for a free slug, suffixing -2, -3... on collision. The
// unique index remains the backstop under concurrent creation.
func (s *questionService) uniqueSlug(title string) (string, error) {
	base := helper.Slugify(title)
	slug := base

	for i := 2; ; i++ {
		exists, err := s.questionRepo.ExistsBySlug(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
