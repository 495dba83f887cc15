package repository

import (
	"gorm.io/gorm"
)

// Repositories 存储所有仓库的集合
type Repositories struct {
	Customer CustomerRepository
	Traffic  TrafficRepository
}

// NewRepositories 创建所有仓库的集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(db),
		Traffic:  NewTrafficRepository(db),
	}
}
