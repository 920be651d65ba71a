package orderrepo

import (
	"context"
	"errors"

	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/core/ports"
	"eda/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) UpdateStatusFrom(
	ctx context.Context,
	aggregate *order.Order,
	from order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, from.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"accepted_at": dto.AcceptedAt,
			"eta_minutes": dto.EtaMinutes,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items", byPosition).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAllInAcceptedStatus(
	ctx context.Context,
) ([]*order.Order, []ports.UnreadableOrder, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Order("accepted_at").
		Find(&dtos, "status = ?", order.Accepted.String()).Error; err != nil {
		return nil, nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	var unreadable []ports.UnreadableOrder
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			unreadable = append(unreadable, ports.UnreadableOrder{ID: dto.ID.String(), Err: err})
			continue
		}
		orders = append(orders, o)
	}

	return orders, unreadable, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
