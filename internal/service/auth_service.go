package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hr-records-api/internal/config"
	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenClaims - полезная нагрузка JWT
type TokenClaims struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthService выпускает и проверяет токены доступа
type AuthService interface {
	ObtainPair(ctx context.Context, req *dto.ObtainTokenRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Verify(tokenString string) error
	// ParseAccess проверяет access-токен и возвращает его claims
	ParseAccess(tokenString string) (*TokenClaims, error)
}

type authService struct {
	accRepo repository.AccountRepository
	cfg     config.JWTConfig
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(accRepo repository.AccountRepository, cfg config.JWTConfig) AuthService {
	return &authService{
		accRepo: accRepo,
		cfg:     cfg,
	}
}

func (s *authService) ObtainPair(ctx context.Context, req *dto.ObtainTokenRequest) (*dto.TokenPairResponse, error) {
	acc, err := s.accRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.issue(acc, tokenTypeAccess, s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.issue(acc, tokenTypeRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", domain.ErrInvalidToken
	}

	// Учётная запись могла быть удалена после выпуска refresh-токена
	acc, err := s.accRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", err
	}

	return s.issue(acc, tokenTypeAccess, s.cfg.AccessTTL)
}

func (s *authService) Verify(tokenString string) error {
	_, err := s.parse(tokenString)
	return err
}

func (s *authService) ParseAccess(tokenString string) (*TokenClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) issue(acc *domain.Account, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		AccountID: acc.ID,
		Username:  acc.Username,
		IsStaff:   acc.IsStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *authService) parse(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
