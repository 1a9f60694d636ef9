package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/commerce-next/internal/config"
	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupMemberAuthServiceTest(t *testing.T, name string) (*MemberAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Member{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.MemberJWT.SecretKey = "test-secret-key-for-member-auth-tests"
	cfg.MemberJWT.ExpireHours = 1
	return NewMemberAuthService(cfg, repository.NewMemberRepository(db)), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_register_login")

	member, token, expiresAt, err := svc.Register(RegisterInput{
		UserID:   "demo",
		Email:    "Demo@Example.com",
		Password: "demo1234",
		Name:     "Demo",
		City:     "Seoul",
		Street:   "Teheran-ro 1",
		Zipcode:  "06000",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if member.Email != "demo@example.com" {
		t.Fatalf("expected normalized email, got %s", member.Email)
	}
	if member.Status != constants.MemberStatusActive {
		t.Fatalf("expected active member, got %s", member.Status)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("unexpected token %q expiry %v", token, expiresAt)
	}

	claims, err := svc.ParseMemberJWT(token)
	if err != nil {
		t.Fatalf("ParseMemberJWT error: %v", err)
	}
	if claims.MemberID != member.ID || claims.UserID != "demo" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	logged, _, _, err := svc.Login("demo", "demo1234")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if logged.ID != member.ID {
		t.Fatalf("unexpected member: %+v", logged)
	}
}

func TestRegisterDuplicateUserID(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_dup_user")
	if _, _, _, err := svc.Register(RegisterInput{UserID: "demo", Email: "a@example.com", Password: "pw123456"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, _, _, err := svc.Register(RegisterInput{UserID: "demo", Email: "b@example.com", Password: "pw123456"})
	if !errors.Is(err, ErrUserIDExists) {
		t.Fatalf("expected user id exists, got: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_dup_email")
	if _, _, _, err := svc.Register(RegisterInput{UserID: "first", Email: "same@example.com", Password: "pw123456"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, _, _, err := svc.Register(RegisterInput{UserID: "second", Email: "SAME@example.com", Password: "pw123456"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected email exists, got: %v", err)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_bad_email")
	_, _, _, err := svc.Register(RegisterInput{UserID: "demo", Email: "not-an-email", Password: "pw123456"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_wrong_pw")
	if _, _, _, err := svc.Register(RegisterInput{UserID: "demo", Email: "demo@example.com", Password: "pw123456"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, _, _, err := svc.Login("demo", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_unknown_user")
	_, _, _, err := svc.Login("ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
}

func TestLoginDeactivatedMember(t *testing.T) {
	svc, db := setupMemberAuthServiceTest(t, "auth_disabled_member")
	member, _, _, err := svc.Register(RegisterInput{UserID: "demo", Email: "demo@example.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if err := db.Model(&models.Member{}).Where("id = ?", member.ID).Update("status", constants.MemberStatusDisabled).Error; err != nil {
		t.Fatalf("disable member failed: %v", err)
	}

	_, _, _, err = svc.Login("demo", "pw123456")
	if !errors.Is(err, ErrMemberDeactivated) {
		t.Fatalf("expected member deactivated, got: %v", err)
	}
}

func TestParseMemberJWTRejectsWrongKey(t *testing.T) {
	svc, _ := setupMemberAuthServiceTest(t, "auth_wrong_key")
	member := &models.Member{ID: 1, UserID: "demo"}
	token, _, err := svc.GenerateMemberJWT(member)
	if err != nil {
		t.Fatalf("GenerateMemberJWT error: %v", err)
	}

	other, _ := setupMemberAuthServiceTest(t, "auth_wrong_key_other")
	other.cfg.MemberJWT.SecretKey = "another-secret-key-entirely-different"
	if _, err := other.ParseMemberJWT(token); err == nil {
		t.Fatalf("expected parse failure with wrong key")
	}
}
