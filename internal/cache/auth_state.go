package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/commerce-next/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// MemberAuthState 会员鉴权快照
// token_invalid_before 为 Unix 秒时间戳，0 表示未设置
// 该结构仅用于服务端 Redis 缓存，避免每次请求回查数据库
type MemberAuthState struct {
	MemberID           uint   `json:"member_id"`
	Status             string `json:"status"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	UpdatedAt          int64  `json:"updated_at"`
}

func memberAuthStateKey(memberID uint) string {
	return fmt.Sprintf("auth:member:%d", memberID)
}

// BuildMemberAuthState 从会员模型构建鉴权快照
func BuildMemberAuthState(member *models.Member) *MemberAuthState {
	if member == nil {
		return nil
	}
	state := &MemberAuthState{
		MemberID:     member.ID,
		Status:       member.Status,
		TokenVersion: member.TokenVersion,
		UpdatedAt:    time.Now().Unix(),
	}
	if member.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = member.TokenInvalidBefore.Unix()
	}
	return state
}

// GetMemberAuthState 获取会员鉴权快照
func GetMemberAuthState(ctx context.Context, memberID uint) (*MemberAuthState, bool, error) {
	if memberID == 0 {
		return nil, false, nil
	}
	var state MemberAuthState
	hit, err := GetJSON(ctx, memberAuthStateKey(memberID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetMemberAuthState 写入会员鉴权快照
func SetMemberAuthState(ctx context.Context, state *MemberAuthState) error {
	if state == nil || state.MemberID == 0 {
		return nil
	}
	return SetJSON(ctx, memberAuthStateKey(state.MemberID), state, authStateCacheTTL)
}

// DelMemberAuthState 删除会员鉴权快照
func DelMemberAuthState(ctx context.Context, memberID uint) error {
	if memberID == 0 {
		return nil
	}
	return Del(ctx, memberAuthStateKey(memberID))
}
