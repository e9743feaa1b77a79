// Package orderrepo maps the order aggregate onto the orders and
// order_items tables.
package orderrepo

import (
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number      string      `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderType   int         `gorm:"type:smallint;not null"`
	TableRef    string      `gorm:"type:varchar(32)"`
	Customer    CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Status      int         `gorm:"type:smallint;not null;index"`
	PrepMinutes int         `gorm:"type:int;not null"`
	Priced      bool        `gorm:"not null;default:false"`
	Totals      TotalsDTO   `gorm:"embedded"`

	CreatedAt   time.Time `gorm:"not null;index"`
	ConfirmedAt *time.Time
	ServedAt    *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	Lines []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name         string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(32)"`
	Instructions string `gorm:"type:text"`
}

type TotalsDTO struct {
	Subtotal decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Discount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

// LineItemDTO is one row of order_items. Position keeps insertion order.
type LineItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"type:int;not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity   int             `gorm:"type:int;not null"`
	Note       string          `gorm:"type:text"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()
	orderID := s.ID.Bytes()

	lines := make([]LineItemDTO, 0, len(s.Lines))
	for i, l := range s.Lines {
		lines = append(lines, LineItemDTO{
			ID:         l.ID.Bytes(),
			OrderID:    orderID,
			Position:   i,
			MenuItemID: l.MenuItemID.Bytes(),
			Name:       l.Name,
			UnitPrice:  l.UnitPrice.Decimal(),
			Quantity:   l.Quantity,
			Note:       l.Note,
		})
	}

	dto := OrderDTO{
		ID:        orderID,
		Number:    s.Number,
		OrderType: int(s.Destination.Type),
		TableRef:  s.Destination.Table,
		Customer: CustomerDTO{
			Name:         s.Customer.Name,
			Phone:        s.Customer.Phone,
			Instructions: s.Customer.Instructions,
		},
		Status:      int(s.Status),
		PrepMinutes: s.PrepMinutes,
		CreatedAt:   s.CreatedAt,
		ConfirmedAt: nullableTime(s.ConfirmedAt),
		ServedAt:    nullableTime(s.ServedAt),
		CompletedAt: nullableTime(s.CompletedAt),
		CancelledAt: nullableTime(s.CancelledAt),
		Lines:       lines,
	}
	if s.Totals != nil {
		dto.Priced = true
		dto.Totals = TotalsDTO{
			Subtotal: s.Totals.Subtotal.Decimal(),
			Tax:      s.Totals.Tax.Decimal(),
			Discount: s.Totals.Discount.Decimal(),
			Total:    s.Totals.Total.Decimal(),
		}
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineSnapshot, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	s := order.Snapshot{
		ID:     id,
		Number: dto.Number,
		Destination: order.Destination{
			Type:  order.Type(dto.OrderType),
			Table: dto.TableRef,
		},
		Customer: order.Customer{
			Name:         dto.Customer.Name,
			Phone:        dto.Customer.Phone,
			Instructions: dto.Customer.Instructions,
		},
		Status:      order.Status(dto.Status),
		Lines:       lines,
		PrepMinutes: dto.PrepMinutes,
		CreatedAt:   dto.CreatedAt.UTC(),
		ConfirmedAt: timeValue(dto.ConfirmedAt),
		ServedAt:    timeValue(dto.ServedAt),
		CompletedAt: timeValue(dto.CompletedAt),
		CancelledAt: timeValue(dto.CancelledAt),
	}

	if dto.Priced {
		totals, totalsErr := totalsToDomain(dto.Totals)
		if totalsErr != nil {
			return nil, totalsErr
		}
		s.Totals = &totals
	}

	return order.RestoreOrder(s)
}

func lineToDomain(dto LineItemDTO) (order.LineSnapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineSnapshot{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineSnapshot{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineSnapshot{}, err
	}

	return order.LineSnapshot{
		ID:         id,
		MenuItemID: menuItemID,
		Name:       dto.Name,
		UnitPrice:  price,
		Quantity:   dto.Quantity,
		Note:       dto.Note,
	}, nil
}

func totalsToDomain(dto TotalsDTO) (order.Totals, error) {
	var (
		t   order.Totals
		err error
	)
	if t.Subtotal, err = kernel.NewMoney(dto.Subtotal); err != nil {
		return order.Totals{}, err
	}
	if t.Tax, err = kernel.NewMoney(dto.Tax); err != nil {
		return order.Totals{}, err
	}
	if t.Discount, err = kernel.NewMoney(dto.Discount); err != nil {
		return order.Totals{}, err
	}
	if t.Total, err = kernel.NewMoney(dto.Total); err != nil {
		return order.Totals{}, err
	}
	return t, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
