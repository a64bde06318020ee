package services

import (
	"qa-forum/models"
	"qa-forum/repositories"
)

type UserService interface {
	GetDetail(id uint) (*models.UserDetail, error)
	UpdateSettings(userID uint, req models.UpdateSettingsRequest) (*models.UserProfile, error)
}

type userService struct {
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
}

func NewUserService(userRepo repositories.UserRepository, activityRepo repositories.ActivityRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

func (s *userService) GetDetail(id uint) (*models.UserDetail, error) {
	return s.userRepo.GetDetail(id)
}

// UpdateSettings applies profile changes. Display-name and avatar changes
// land in the user's own activity feed.
func (s *userService) UpdateSettings(userID uint, req models.UpdateSettingsRequest) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	if profile == nil {
		profile = &models.UserProfile{UserID: userID}
	}

	nameChanged := req.DisplayName != nil && *req.DisplayName != profile.DisplayName
	avatarChanged := req.Avatar != nil && *req.Avatar != profile.Avatar

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Avatar != nil {
		profile.Avatar = *req.Avatar
	}
	if req.PageSizePreference != nil {
		pref := *req.PageSizePreference
		profile.PageSizePreference = &pref
	}

	if err := s.userRepo.UpdateProfile(profile); err != nil {
		return nil, err
	}

	if nameChanged {
		if err := s.recordProfileActivity(userID, models.ActivityUserChangedName); err != nil {
			return nil, err
		}
	}
	if avatarChanged {
		if err := s.recordProfileActivity(userID, models.ActivityUserChangedAvatar); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

func (s *userService) recordProfileActivity(userID uint, activityType models.ActivityType) error {
	return s.activityRepo.Create(&models.Activity{
		UserID:     userID,
		Type:       activityType,
		TargetType: models.TargetUser,
		TargetID:   userID,
	})
}
