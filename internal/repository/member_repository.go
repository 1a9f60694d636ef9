package repository

import (
	"errors"

	"github.com/commerce-next/internal/models"

	"gorm.io/gorm"
)

// MemberRepository 会员数据访问接口
type MemberRepository interface {
	Create(member *models.Member) error
	GetByID(id uint) (*models.Member, error)
	GetByUserID(userID string) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	Update(id uint, updates map[string]interface{}) error
	WithTx(tx *gorm.DB) *GormMemberRepository
}

// GormMemberRepository GORM 实现
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓库
func NewMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// WithTx 绑定事务
func (r *GormMemberRepository) WithTx(tx *gorm.DB) *GormMemberRepository {
	if tx == nil {
		return r
	}
	return &GormMemberRepository{db: tx}
}

// Create 创建会员
func (r *GormMemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID 根据 ID 获取会员
func (r *GormMemberRepository) GetByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// GetByUserID 根据登录账号获取会员
func (r *GormMemberRepository) GetByUserID(userID string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// GetByEmail 根据邮箱获取会员
func (r *GormMemberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// Update 更新会员字段
func (r *GormMemberRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Member{}).Where("id = ?", id).Updates(updates).Error
}
