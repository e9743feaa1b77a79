package tablerepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Add(ctx context.Context, t table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := r.GetByNumber(ctx, t.Number()); err == nil {
		return fmt.Errorf("%w: %s", table.ErrNumberIsTaken, t.Number())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	dto := fromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTableRepository) Update(ctx context.Context, t table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", t.ID().String())
	}
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (table.Table, error) {
	if err := id.Validate(); err != nil {
		return table.Table{}, err
	}
	return r.first(ctx, "table", id.String(), "id = ?", id.Bytes())
}

func (r *GormTableRepository) GetByNumber(ctx context.Context, number string) (table.Table, error) {
	number = strings.TrimSpace(number)
	return r.first(ctx, "table number", number, "number = ?", number)
}

// List returns tables ordered by number.
func (r *GormTableRepository) List(ctx context.Context, onlyAvailable bool) ([]table.Table, error) {
	q := r.db.WithContext(ctx).Order("number ASC")
	if onlyAvailable {
		q = q.Where("active = ? AND occupied = ?", true, false)
	}

	var dtos []TableDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	tables := make([]table.Table, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (r *GormTableRepository) first(ctx context.Context, param, key string, query string, args ...any) (table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return table.Table{}, errs.NewObjectNotFoundError(param, key)
		}
		return table.Table{}, err
	}
	return toDomain(dto)
}
