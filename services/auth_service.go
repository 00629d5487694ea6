package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	images *utils.ImageStore
}

func NewAuthService(db *gorm.DB, secret []byte, ttl time.Duration, images *utils.ImageStore) *AuthService {
	return &AuthService{db: db, secret: secret, ttl: ttl, images: images}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Pnum     string

	// Optional profile picture from the multipart form.
	ImageData []byte
	ImageMime string
}

func validateRegistration(in RegisterInput) utils.ValidationErrors {
	var verrs utils.ValidationErrors
	if len(strings.TrimSpace(in.Name)) < 3 {
		verrs = append(verrs, utils.FieldError{Field: "name", Message: "Enter a valid user name."})
	}
	if !utils.IsEmail(in.Email) {
		verrs = append(verrs, utils.FieldError{Field: "email", Message: "Enter a valid user email."})
	}
	if !utils.IsStrongPassword(in.Password) {
		verrs = append(verrs, utils.FieldError{Field: "password", Message: "Enter a valid strong password."})
	}
	if !utils.IsPhone(in.Pnum) {
		verrs = append(verrs, utils.FieldError{Field: "pnum", Message: "Phone number must be 10 digits long."})
	}
	return verrs
}

// Register validates the form, hashes the password and stores the account,
// then issues a short-lived token for the new user. All validation happens
// before any write.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if verrs := validateRegistration(in); len(verrs) > 0 {
		return "", verrs
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	err = s.db.WithContext(ctx).Where("pnum = ?", in.Pnum).First(&existing).Error
	if err == nil {
		return "", ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Pnum:     in.Pnum,
		Password: hashed,
	}

	if len(in.ImageData) > 0 {
		if s.images != nil {
			url, err := s.images.Upload(ctx, in.ImageData, in.ImageMime)
			if err != nil {
				return "", err
			}
			user.PicURL = url
		} else {
			user.PicData = in.ImageData
			user.PicMime = in.ImageMime
		}
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, s.secret, s.ttl)
}

// Login accepts an email-shaped or phone-shaped identifier, disambiguated by
// the presence of '@'. Unknown identifier and wrong password produce the
// identical ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, emailOrPhone, password string) (string, error) {
	if !utils.IsEmail(emailOrPhone) && !utils.IsPhone(emailOrPhone) {
		return "", utils.ValidationErrors{{Field: "emailOrPhone", Message: "Enter a valid login option."}}
	}

	field := "pnum"
	if strings.Contains(emailOrPhone, "@") {
		field = "email"
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where(field+" = ?", emailOrPhone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, s.secret, s.ttl)
}
