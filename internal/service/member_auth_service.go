package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/commerce-next/internal/cache"
	"github.com/commerce-next/internal/config"
	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// MemberAuthService 会员认证服务
type MemberAuthService struct {
	cfg        *config.Config
	memberRepo *repository.GormMemberRepository
}

// NewMemberAuthService 创建会员认证服务
func NewMemberAuthService(cfg *config.Config, memberRepo *repository.GormMemberRepository) *MemberAuthService {
	return &MemberAuthService{cfg: cfg, memberRepo: memberRepo}
}

// MemberJWTClaims 会员 JWT 声明
type MemberJWTClaims struct {
	MemberID     uint   `json:"member_id"`
	UserID       string `json:"user_id"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// RegisterInput 会员注册输入
type RegisterInput struct {
	UserID   string
	Email    string
	Password string
	Name     string
	City     string
	Street   string
	Zipcode  string
}

// Register 会员注册
func (s *MemberAuthService) Register(input RegisterInput) (*models.Member, string, time.Time, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	exist, err := s.memberRepo.GetByUserID(userID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if exist != nil {
		return nil, "", time.Time{}, ErrUserIDExists
	}
	exist, err = s.memberRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if exist != nil {
		return nil, "", time.Time{}, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	member := &models.Member{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		City:         strings.TrimSpace(input.City),
		Street:       strings.TrimSpace(input.Street),
		Zipcode:      strings.TrimSpace(input.Zipcode),
		Status:       constants.MemberStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateMemberJWT(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	member.LastLoginAt = &now
	if err := s.memberRepo.Update(member.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetMemberAuthState(context.Background(), cache.BuildMemberAuthState(member))

	return member, token, expiresAt, nil
}

// Login 会员登录
func (s *MemberAuthService) Login(userID, password string) (*models.Member, string, time.Time, error) {
	member, err := s.memberRepo.GetByUserID(strings.TrimSpace(userID))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if member == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !strings.EqualFold(member.Status, constants.MemberStatusActive) {
		return nil, "", time.Time{}, ErrMemberDeactivated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateMemberJWT(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	member.LastLoginAt = &now
	if err := s.memberRepo.Update(member.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetMemberAuthState(context.Background(), cache.BuildMemberAuthState(member))

	return member, token, expiresAt, nil
}

// GenerateMemberJWT 生成会员 JWT Token
func (s *MemberAuthService) GenerateMemberJWT(member *models.Member) (string, time.Time, error) {
	expireHours := s.cfg.MemberJWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := MemberJWTClaims{
		MemberID:     member.ID,
		UserID:       member.UserID,
		TokenVersion: member.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.MemberJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseMemberJWT 解析会员 JWT Token
func (s *MemberAuthService) ParseMemberJWT(tokenString string) (*MemberJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &MemberJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.MemberJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*MemberJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// GetMemberByID 获取会员信息
func (s *MemberAuthService) GetMemberByID(id uint) (*models.Member, error) {
	if id == 0 {
		return nil, ErrMemberNotFound
	}
	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
