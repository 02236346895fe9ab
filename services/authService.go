package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bhinnashad-api/dtos"
	"bhinnashad-api/models"
	"bhinnashad-api/utils"
)

type AuthService interface {
	Login(input dtos.LoginInput) (*dtos.AuthResponse, error)
	ListUsers() ([]models.User, error)
}

type authService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) AuthService {
	return &authService{db: db}
}

func (s *authService) Login(input dtos.LoginInput) (*dtos.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return nil, errors.New("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errors.New("Incorrect password")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.New("Failed to generate token")
	}

	return &dtos.AuthResponse{
		Message: "Login successful",
		Token:   token,
		Role:    user.Role,
	}, nil
}

func (s *authService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
