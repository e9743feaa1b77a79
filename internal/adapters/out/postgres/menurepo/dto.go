// Package menurepo maps menu items onto the menu_items table.
package menurepo

import (
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(64);not null;default:'';index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available   bool            `gorm:"not null;index"`
	PrepMinutes int             `gorm:"type:int;not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Category:    item.Category(),
		Price:       item.Price().Decimal(),
		Available:   item.Available(),
		PrepMinutes: item.PrepMinutes(),
	}
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Item{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.RestoreItem(id, dto.Name, dto.Category, price, dto.Available, dto.PrepMinutes)
}
