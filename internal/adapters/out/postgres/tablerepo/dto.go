// Package tablerepo maps dining tables onto the dining_tables table.
package tablerepo

import (
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type TableDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number   string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	Capacity int       `gorm:"type:int;not null"`
	Section  string    `gorm:"type:varchar(50);not null;default:'Main'"`
	Active   bool      `gorm:"not null;default:true"`
	Occupied bool      `gorm:"not null;default:false;index"`
}

func (TableDTO) TableName() string {
	return "dining_tables"
}

func fromDomain(t table.Table) TableDTO {
	return TableDTO{
		ID:       t.ID().Bytes(),
		Number:   t.Number(),
		Capacity: t.Capacity(),
		Section:  t.Section(),
		Active:   t.Active(),
		Occupied: t.Occupied(),
	}
}

func toDomain(dto TableDTO) (table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return table.Table{}, err
	}
	return table.RestoreTable(id, dto.Number, dto.Capacity, dto.Section, dto.Active, dto.Occupied)
}
