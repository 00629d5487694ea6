package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	images *utils.ImageStore
}

func NewUserService(db *gorm.DB, images *utils.ImageStore) *UserService {
	return &UserService{db: db, images: images}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries partial fields; an empty string means "leave as is".
type ProfileUpdate struct {
	Name  string
	Email string
	Pnum  string

	ImageData []byte
	ImageMime string
}

// UpdateProfile applies only the supplied fields, validating each with the
// registration rules. Absent fields are left untouched, not cleared.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*models.User, error) {
	var verrs utils.ValidationErrors
	if in.Name != "" && len(strings.TrimSpace(in.Name)) < 3 {
		verrs = append(verrs, utils.FieldError{Field: "name", Message: "Name must be at least 3 characters."})
	}
	if in.Email != "" && !utils.IsEmail(in.Email) {
		verrs = append(verrs, utils.FieldError{Field: "email", Message: "Invalid email format."})
	}
	if in.Pnum != "" && !utils.IsPhone(in.Pnum) {
		verrs = append(verrs, utils.FieldError{Field: "pnum", Message: "Phone number must be exactly 10 digits."})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && in.Email != user.Email {
		if taken, err := s.fieldTaken(ctx, "email", in.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailTaken
		}
		user.Email = in.Email
	}
	if in.Pnum != "" && in.Pnum != user.Pnum {
		if taken, err := s.fieldTaken(ctx, "pnum", in.Pnum, id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrPhoneTaken
		}
		user.Pnum = in.Pnum
	}
	if in.Name != "" {
		user.Name = in.Name
	}

	if len(in.ImageData) > 0 {
		if s.images != nil {
			url, err := s.images.Upload(ctx, in.ImageData, in.ImageMime)
			if err != nil {
				return nil, err
			}
			user.PicURL = url
		} else {
			user.PicData = in.ImageData
			user.PicMime = in.ImageMime
		}
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) fieldTaken(ctx context.Context, field, value string, selfID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where(field+" = ? AND id <> ?", value, selfID).
		Count(&count).Error
	return count > 0, err
}
