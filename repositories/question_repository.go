package repositories

import (
	"strconv"
	"strings"
	"time"

	"qa-forum/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetDiscussion(id uint) (*models.Question, error)
	IncrementViewCount(id uint) error
	ExistsBySlug(slug string) (bool, error)
	GetList(params models.QuestionListParams, pageSize int) ([]models.QuestionListItem, int64, error)
	GetHotList(cutoff time.Time, dislikedIDs []uint, page, pageSize int) ([]models.QuestionListItem, int64, error)
	GetTagFilteredList(tagSlugs []string, page, pageSize int) ([]models.QuestionListItem, int64, error)
	GetByAuthor(authorID uint, page, pageSize int) ([]models.QuestionListItem, int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("Author").Preload("Tags").First(&question, id).Error
	return &question, err
}

func (r *questionRepository) GetDiscussion(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Where("is_active = ?", true).
		Preload("Author.Profile").
		Preload("Tags").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).
				Order("is_correct desc").
				Order("rating_total desc").
				Preload("Author.Profile")
		}).
		First(&question, id).Error
	return &question, err
}

func (r *questionRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *questionRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// GetList returns active questions newest first, optionally filtered by a
// case-insensitive substring match on title or content.
func (r *questionRepository) GetList(params models.QuestionListParams, pageSize int) ([]models.QuestionListItem, int64, error) {
	query := r.db.Model(&models.Question{}).Where("is_active = ?", true)

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []models.Question
	offset := (params.Page - 1) * pageSize
	err := query.Preload("Author.Profile").Preload("Tags").
		Order("created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := r.annotate(questions)
	return items, total, err
}

// GetHotList restricts the listing to questions created at or after cutoff and
// orders by rating then recency. Questions the viewer has disliked sort last
// regardless of rating; their relative order inside each group is preserved.
func (r *questionRepository) GetHotList(cutoff time.Time, dislikedIDs []uint, page, pageSize int) ([]models.QuestionListItem, int64, error) {
	query := r.db.Model(&models.Question{}).
		Where("is_active = ?", true).
		Where("created_at >= ?", cutoff)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if len(dislikedIDs) > 0 {
		query = query.Order(demotionOrder(dislikedIDs))
	}

	var questions []models.Question
	offset := (page - 1) * pageSize
	err := query.Preload("Author.Profile").Preload("Tags").
		Order("rating_total desc").
		Order("created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := r.annotate(questions)
	return items, total, err
}

// demotionOrder builds a CASE expression sorting disliked question ids after
// everything else. The ids come from our own votes query, so inlining them is
// safe.
func demotionOrder(dislikedIDs []uint) string {
	ids := make([]string, len(dislikedIDs))
	for i, id := range dislikedIDs {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}
	return "CASE WHEN questions.id IN (" + strings.Join(ids, ",") + ") THEN 1 ELSE 0 END"
}

// GetTagFilteredList returns active questions carrying ALL of the given tag
// slugs. Unknown slugs simply match nothing.
func (r *questionRepository) GetTagFilteredList(tagSlugs []string, page, pageSize int) ([]models.QuestionListItem, int64, error) {
	if len(tagSlugs) == 0 {
		return []models.QuestionListItem{}, 0, nil
	}

	lowered := make([]string, len(tagSlugs))
	for i, slug := range tagSlugs {
		lowered[i] = strings.ToLower(slug)
	}

	matching := r.db.Model(&models.Question{}).
		Select("questions.id").
		Joins("JOIN question_tags ON question_tags.question_id = questions.id").
		Joins("JOIN tags ON tags.id = question_tags.tag_id").
		Where("questions.is_active = ?", true).
		Where("LOWER(tags.slug) IN ?", lowered).
		Group("questions.id").
		Having("COUNT(DISTINCT tags.id) = ?", len(lowered))

	var total int64
	if err := r.db.Table("(?) AS matched", matching).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []models.Question
	offset := (page - 1) * pageSize
	err := r.db.Preload("Author.Profile").Preload("Tags").
		Where("questions.id IN (?)", matching).
		Order("created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := r.annotate(questions)
	return items, total, err
}

func (r *questionRepository) GetByAuthor(authorID uint, page, pageSize int) ([]models.QuestionListItem, int64, error) {
	query := r.db.Model(&models.Question{}).
		Where("is_active = ?", true).
		Where("author_id = ?", authorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []models.Question
	offset := (page - 1) * pageSize
	err := query.Preload("Tags").
		Order("created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := r.annotate(questions)
	return items, total, err
}

// annotate attaches the live answer count and best answer id (correct-flagged
// first, then highest rating) to a page of questions.
func (r *questionRepository) annotate(questions []models.Question) ([]models.QuestionListItem, error) {
	items := make([]models.QuestionListItem, len(questions))
	if len(questions) == 0 {
		return items, nil
	}

	ids := make([]uint, len(questions))
	for i, q := range questions {
		items[i] = models.QuestionListItem{Question: q}
		ids[i] = q.ID
	}

	var counts []struct {
		QuestionID uint
		Count      int64
	}
	countQuery := `
		SELECT question_id, COUNT(*) AS count
		FROM answers
		WHERE question_id IN ? AND is_active = TRUE
		GROUP BY question_id
	`
	if err := r.db.Raw(countQuery, ids).Scan(&counts).Error; err != nil {
		return nil, err
	}

	var best []struct {
		QuestionID uint
		ID         uint
	}
	bestQuery := `
		SELECT DISTINCT ON (question_id) question_id, id
		FROM answers
		WHERE question_id IN ? AND is_active = TRUE
		ORDER BY question_id, is_correct DESC, rating_total DESC
	`
	if err := r.db.Raw(bestQuery, ids).Scan(&best).Error; err != nil {
		return nil, err
	}

	countByQuestion := make(map[uint]int64, len(counts))
	for _, row := range counts {
		countByQuestion[row.QuestionID] = row.Count
	}
	bestByQuestion := make(map[uint]uint, len(best))
	for _, row := range best {
		bestByQuestion[row.QuestionID] = row.ID
	}

	for i := range items {
		items[i].AnswerCount = countByQuestion[items[i].ID]
		if bestID, ok := bestByQuestion[items[i].ID]; ok {
			id := bestID
			items[i].BestAnswerID = &id
		}
	}

	return items, nil
}
