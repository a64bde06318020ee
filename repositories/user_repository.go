package repositories

import (
	"qa-forum/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByLogin(login string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetDetail(id uint) (*models.UserDetail, error)
	GetBestMembers(count int) ([]models.User, error)
	UpdateProfile(profile *models.UserProfile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, id).Error
	return &user, err
}

// Login and email uniqueness is case-insensitive, so lookups are too.
func (r *userRepository) GetByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("LOWER(login) = LOWER(?)", login).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	return &user, err
}

// GetDetail annotates the user with live content counters for the profile page.
func (r *userRepository) GetDetail(id uint) (*models.UserDetail, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := &models.UserDetail{User: *user}

	if err := r.db.Model(&models.Question{}).
		Where("author_id = ?", id).
		Count(&detail.TotalQuestionsAsked).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Answer{}).
		Where("author_id = ?", id).
		Count(&detail.TotalAnswersPosted).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// GetBestMembers returns the top count users by profile rating, descending.
func (r *userRepository) GetBestMembers(count int) ([]models.User, error) {
	var users []models.User
	err := r.db.Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("users.is_active = ?", true).
		Preload("Profile").
		Order("user_profiles.rating desc").
		Limit(count).
		Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateProfile(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
