package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates a chef account. Email and the (prefix, number) phone pair
// are unique across chefs; a clash answers 409 before any row is written.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Chef, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !isDigits(req.PhonePrefix[1:]) {
		return nil, "", apperrors.BadRequest("prefisso telefonico non valido")
	}

	var existing models.Chef
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", apperrors.Conflict("email già registrata")
	}
	if err := s.db.WithContext(ctx).
		Where("phone_prefix = ? AND phone_number = ?", req.PhonePrefix, req.PhoneNumber).
		First(&existing).Error; err == nil {
		return nil, "", apperrors.Conflict("numero di telefono già registrato")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	chef := models.Chef{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		CountryCode:  strings.ToUpper(req.CountryCode),
		PhonePrefix:  req.PhonePrefix,
		PhoneNumber:  req.PhoneNumber,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleChef,
	}

	if err := s.db.WithContext(ctx).Create(&chef).Error; err != nil {
		// Concurrent registration can still trip the unique indexes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.Conflict("email o telefono già registrati")
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(&chef)
	if err != nil {
		return nil, "", err
	}
	return &chef, token, nil
}

// Login verifies credentials. Unknown email and wrong password answer the
// same way so the response doesn't leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Chef, string, error) {
	var chef models.Chef
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&chef).Error
	if err != nil {
		return nil, "", apperrors.Unauthorized("credenziali non valide")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(chef.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("credenziali non valide")
	}

	token, err := s.GenerateToken(&chef)
	if err != nil {
		return nil, "", err
	}
	return &chef, token, nil
}

// Me returns the authenticated chef's core fields.
func (s *AuthService) Me(ctx context.Context, chefID uuid.UUID) (*models.Chef, error) {
	var chef models.Chef
	if err := s.db.WithContext(ctx).First(&chef, "id = ?", chefID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("account non trovato")
		}
		return nil, err
	}
	return &chef, nil
}

// ChangePassword verifies the current password and sets the new one.
// Re-using the identical password is rejected even though it satisfies the
// policy on its own.
func (s *AuthService) ChangePassword(ctx context.Context, chefID uuid.UUID, oldPassword, newPassword string) error {
	if newPassword == oldPassword {
		return apperrors.BadRequest("la nuova password deve essere diversa da quella attuale")
	}

	var chef models.Chef
	if err := s.db.WithContext(ctx).First(&chef, "id = ?", chefID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Unauthorized("account non trovato")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(chef.PasswordHash), []byte(oldPassword)); err != nil {
		return apperrors.BadRequest("password attuale non corretta")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&chef).Update("password_hash", string(hashed)).Error
}

// GenerateToken signs an HS256 token for the chef.
func (s *AuthService) GenerateToken(chef *models.Chef) (string, error) {
	claims := jwt.MapClaims{
		"sub":  chef.ID.String(),
		"role": chef.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses a token and returns the typed principal.
func (s *AuthService) ValidateToken(tokenString string) (*types.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	chefID, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleChef
	}

	return &types.Principal{ChefID: chefID, Role: role}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
