package traffic

import (
	"context"
	"time"

	"trafficapi/internal/model"
	"trafficapi/internal/repository"
)

// DateLayout 日期参数唯一接受的格式 YYYY-MM-DD HH:MM:SS
const DateLayout = "2006-01-02 15:04:05"

const dateLayoutHint = "YYYY-MM-DD HH:MM:SS"

// Query 原始查询参数，空值表示不过滤
type Query struct {
	CustomerID int64
	StartDate  string
	EndDate    string
	IP         string
}

// QueryService 流量汇总查询
type QueryService interface {
	ComputeTraffic(ctx context.Context, q Query) ([]model.AggregateRow, error)
}

// DefaultQueryService 默认实现
type DefaultQueryService struct {
	trafficRepo repository.TrafficRepository
}

// NewQueryService 创建流量查询服务
func NewQueryService(trafficRepo repository.TrafficRepository) QueryService {
	return &DefaultQueryService{trafficRepo: trafficRepo}
}

// ComputeTraffic 校验参数后执行分组汇总
// 先分别解析两个日期（格式错误返回 *ValidationError），都解析成功后再比较先后（返回 *RangeError）
func (s *DefaultQueryService) ComputeTraffic(ctx context.Context, q Query) ([]model.AggregateRow, error) {
	filter, err := BuildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.trafficRepo.Aggregate(ctx, filter)
}

// BuildFilter 把原始参数转换为仓库层的过滤条件
func BuildFilter(q Query) (model.TrafficFilter, error) {
	filter := model.TrafficFilter{
		CustomerID: q.CustomerID,
		IP:         q.IP,
	}

	if q.StartDate != "" {
		start, err := ParseDate(q.StartDate)
		if err != nil {
			return model.TrafficFilter{}, newFormatError("start_date", dateLayoutHint)
		}
		filter.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := ParseDate(q.EndDate)
		if err != nil {
			return model.TrafficFilter{}, newFormatError("end_date", dateLayoutHint)
		}
		filter.EndDate = &end
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return model.TrafficFilter{}, &RangeError{Message: "start_date must not be later than end_date"}
	}

	return filter, nil
}

// ParseDate 按 DateLayout 解析，结果为 UTC
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
