package public

import (
	"time"

	"github.com/commerce-next/internal/http/response"
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 会员注册请求
type RegisterRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Zipcode  string `json:"zipcode"`
}

// LoginRequest 会员登录请求
type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MemberView 会员响应结构
type MemberView struct {
	ID      uint   `json:"id"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
	Status  string `json:"status"`
}

func buildMemberView(member *models.Member) MemberView {
	return MemberView{
		ID:      member.ID,
		UserID:  member.UserID,
		Email:   member.Email,
		Name:    member.Name,
		City:    member.City,
		Street:  member.Street,
		Zipcode: member.Zipcode,
		Status:  member.Status,
	}
}

// MemberRegister 会员注册
func (h *Handler) MemberRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	member, token, expiresAt, err := h.MemberAuthService.Register(service.RegisterInput{
		UserID:   req.UserID,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		City:     req.City,
		Street:   req.Street,
		Zipcode:  req.Zipcode,
	})
	if err != nil {
		respondWithMappedError(c, err, memberAuthErrorRules, response.CodeInternal, "register failed")
		return
	}

	response.Success(c, gin.H{
		"member":     buildMemberView(member),
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// MemberLogin 会员登录
func (h *Handler) MemberLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	member, token, expiresAt, err := h.MemberAuthService.Login(req.UserID, req.Password)
	if err != nil {
		respondWithMappedError(c, err, memberAuthErrorRules, response.CodeInternal, "login failed")
		return
	}

	response.Success(c, gin.H{
		"member":     buildMemberView(member),
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// GetCurrentMember 获取当前会员信息
func (h *Handler) GetCurrentMember(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	member, err := h.MemberAuthService.GetMemberByID(memberID)
	if err != nil {
		respondWithMappedError(c, err, memberAuthErrorRules, response.CodeNotFound, "member not found")
		return
	}
	response.Success(c, buildMemberView(member))
}
