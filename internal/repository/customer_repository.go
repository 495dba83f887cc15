package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trafficapi/internal/model"
)

// CustomerRepository 客户仓库接口
type CustomerRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	FindAll(ctx context.Context) ([]*model.Customer, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, customers []*model.Customer) error
}

// GormCustomerRepository 基于GORM的客户仓库实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓库
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID 根据ID查找客户，不存在时返回 nil, nil
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	result := r.db.WithContext(ctx).First(&customer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &customer, nil
}

// FindAll 查找所有客户
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	var customers []*model.Customer
	result := r.db.WithContext(ctx).Order("id").Find(&customers)
	if result.Error != nil {
		return nil, result.Error
	}
	return customers, nil
}

// Count 客户总数
func (r *GormCustomerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CreateBatch 批量创建客户
func (r *GormCustomerRepository) CreateBatch(ctx context.Context, customers []*model.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(customers).Error
}
