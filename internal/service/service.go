package service

import (
	"gorm.io/gorm"

	"trafficapi/internal/repository"
	"trafficapi/internal/service/traffic"
)

// Services 所有服务的集合
type Services struct {
	Repositories *repository.Repositories
	TrafficQuery traffic.QueryService
}

// NewServices 初始化所有服务
func NewServices(db *gorm.DB) *Services {
	// 创建仓库集合
	repos := repository.NewRepositories(db)

	return &Services{
		Repositories: repos,
		TrafficQuery: traffic.NewQueryService(repos.Traffic),
	}
}
