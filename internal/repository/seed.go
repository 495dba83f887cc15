package repository

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"trafficapi/internal/model"
)

// SeedCustomerNames 初始客户，按顺序获得自增ID 1..8
var SeedCustomerNames = []string{
	"John Doe",
	"Jane Smith",
	"Alice Johnson",
	"Bob Brown",
	"Charlie Brown",
	"David White",
	"Emily Green",
	"Frank Black",
}

// seedTraffic 初始流量，customer 为 SeedCustomerNames 的下标
var seedTraffic = []struct {
	customer int
	ip       string
	date     time.Time
	received float64
}{
	{0, "192.168.218.159", time.Date(2022, 1, 5, 10, 15, 0, 0, time.UTC), 150.00},
	{1, "192.168.5.110", time.Date(2022, 7, 15, 13, 45, 0, 0, time.UTC), 200.00},
	{2, "192.168.214.201", time.Date(2022, 2, 25, 18, 30, 0, 0, time.UTC), 250.00},
	{3, "192.168.224.118", time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC), 300.00},
	{1, "192.168.218.159", time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC), 120.00},
	{3, "192.168.5.110", time.Date(2024, 3, 18, 15, 0, 0, 0, time.UTC), 400.00},
	{0, "192.168.214.201", time.Date(2023, 1, 10, 10, 30, 0, 0, time.UTC), 180.00},
	{2, "192.168.224.118", time.Date(2023, 2, 28, 14, 0, 0, 0, time.UTC), 220.00},
	{1, "192.168.218.159", time.Date(2023, 3, 1, 16, 15, 0, 0, time.UTC), 175.00},
	{3, "192.168.5.110", time.Date(2023, 3, 10, 17, 45, 0, 0, time.UTC), 300.00},
}

// Seed 在 customers 表为空时写入初始数据，已有数据则不做任何修改
// 返回是否实际写入
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := NewRepositories(tx)

		total, err := repos.Customer.Count(ctx)
		if err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		if total > 0 {
			return nil
		}

		customers := make([]*model.Customer, 0, len(SeedCustomerNames))
		for _, name := range SeedCustomerNames {
			customers = append(customers, &model.Customer{Name: name})
		}
		if err := repos.Customer.CreateBatch(ctx, customers); err != nil {
			return fmt.Errorf("create customers: %w", err)
		}

		traffic := make([]*model.Traffic, 0, len(seedTraffic))
		for _, t := range seedTraffic {
			traffic = append(traffic, &model.Traffic{
				CustomerID:      customers[t.customer].ID,
				IP:              t.ip,
				Date:            t.date,
				ReceivedTraffic: t.received,
			})
		}
		if err := repos.Traffic.CreateBatch(ctx, traffic); err != nil {
			return fmt.Errorf("create traffic: %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		log.WithFields(log.Fields{
			"customers": len(SeedCustomerNames),
			"traffic":   len(seedTraffic),
		}).Info("初始数据写入成功")
	} else {
		log.Debug("已存在客户数据，跳过初始化")
	}
	return seeded, nil
}
