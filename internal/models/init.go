package models

import (
	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData 初始化演示数据（已有数据时跳过）
func SeedDemoData() error {
	var count int64
	DB.Model(&Item{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []Item{
		{Name: "Keyboard", SalePrice: NewMoneyFromDecimal(decimal.NewFromInt(129)), SupplyPrice: NewMoneyFromDecimal(decimal.NewFromInt(80)), StockQuantity: 100, Status: constants.ItemStatusActive, SortOrder: 1},
		{Name: "Mouse", SalePrice: NewMoneyFromDecimal(decimal.NewFromInt(59)), SupplyPrice: NewMoneyFromDecimal(decimal.NewFromInt(30)), StockQuantity: 200, Status: constants.ItemStatusActive, SortOrder: 2},
		{Name: "Monitor", SalePrice: NewMoneyFromDecimal(decimal.NewFromInt(899)), SupplyPrice: NewMoneyFromDecimal(decimal.NewFromInt(600)), StockQuantity: 30, Status: constants.ItemStatusActive, SortOrder: 3},
	}
	if err := DB.Create(&items).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	member := Member{
		UserID:       "demo",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		Name:         "Demo Member",
		City:         "Seoul",
		Street:       "Teheran-ro 123",
		Zipcode:      "06234",
		Status:       constants.MemberStatusActive,
	}
	if err := DB.Create(&member).Error; err != nil {
		return err
	}

	logger.Warnw("demo_data_seeded", "member", member.UserID, "items", len(items))
	return nil
}
