package model

import (
	"time"
)

// Traffic 流量记录，每行对应某客户某IP在某时刻收到的流量
type Traffic struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID      uint      `json:"customer_id" gorm:"not null;index"`
	IP              string    `json:"ip" gorm:"not null;index"`
	Date            time.Time `json:"date" gorm:"not null;index"`
	ReceivedTraffic float64   `json:"received_traffic" gorm:"not null"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName 表名沿用单数 traffic
func (Traffic) TableName() string {
	return "traffic"
}

// TrafficFilter 聚合查询的过滤条件，零值字段表示不过滤
type TrafficFilter struct {
	CustomerID int64
	StartDate  *time.Time
	EndDate    *time.Time
	IP         string
}

// AggregateRow 按 (customer_id, ip, date, customer_name) 分组后的流量汇总
type AggregateRow struct {
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	IP           string    `json:"ip"`
	Date         time.Time `json:"date"`
	TotalTraffic float64   `json:"total_traffic"`
}
