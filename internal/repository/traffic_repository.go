package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trafficapi/internal/model"
)

// TrafficRepository 流量记录仓库接口
type TrafficRepository interface {
	// Aggregate 按 (customer_id, ip, date, customer_name) 分组汇总流量
	Aggregate(ctx context.Context, filter model.TrafficFilter) ([]model.AggregateRow, error)
	FindAll(ctx context.Context) ([]*model.Traffic, error)
	CreateBatch(ctx context.Context, traffic []*model.Traffic) error
}

// GormTrafficRepository 基于GORM的流量记录仓库实现
type GormTrafficRepository struct {
	db *gorm.DB
}

// NewTrafficRepository 创建流量记录仓库
func NewTrafficRepository(db *gorm.DB) TrafficRepository {
	return &GormTrafficRepository{db: db}
}

// Aggregate 汇总查询
// 使用内连接：customer 不存在的流量记录不会出现在结果中
func (r *GormTrafficRepository) Aggregate(ctx context.Context, filter model.TrafficFilter) ([]model.AggregateRow, error) {
	query := r.db.WithContext(ctx).
		Table("traffic").
		Select("traffic.customer_id AS customer_id, customers.name AS customer_name, traffic.ip AS ip, " +
			"traffic.date AS date, SUM(traffic.received_traffic) AS total_traffic").
		Joins("INNER JOIN customers ON customers.id = traffic.customer_id")

	// 应用过滤条件，条件之间为 AND 关系
	if filter.CustomerID != 0 {
		query = query.Where("traffic.customer_id = ?", filter.CustomerID)
	}
	if filter.StartDate != nil {
		query = query.Where("traffic.date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("traffic.date <= ?", filter.EndDate.UTC())
	}
	if filter.IP != "" {
		query = query.Where("traffic.ip = ?", filter.IP)
	}

	rows := make([]model.AggregateRow, 0)
	err := query.
		Group("traffic.customer_id, traffic.ip, traffic.date, customers.name").
		Order("traffic.customer_id, traffic.ip, traffic.date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate traffic: %w", err)
	}
	return rows, nil
}

// FindAll 查找所有流量记录
func (r *GormTrafficRepository) FindAll(ctx context.Context) ([]*model.Traffic, error) {
	var traffic []*model.Traffic
	result := r.db.WithContext(ctx).Order("id").Find(&traffic)
	if result.Error != nil {
		return nil, result.Error
	}
	return traffic, nil
}

// CreateBatch 批量写入流量记录
func (r *GormTrafficRepository) CreateBatch(ctx context.Context, traffic []*model.Traffic) error {
	if len(traffic) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(traffic).Error
}
