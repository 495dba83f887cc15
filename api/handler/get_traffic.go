package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"trafficapi/internal/model"
	"trafficapi/internal/service/traffic"
)

// TrafficResp 单条汇总结果
type TrafficResp struct {
	CustomerID   uint    `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	IP           string  `json:"ip"`
	Date         string  `json:"date"`
	TotalTraffic float64 `json:"total_traffic"`
}

// GetTraffic 按客户、时间范围、IP 汇总流量
func GetTraffic(queryService traffic.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := log.Fields{
			"customer_id": c.Query("customer_id"),
			"start_date":  c.Query("start_date"),
			"end_date":    c.Query("end_date"),
			"ip":          c.Query("ip"),
		}
		log.WithFields(fields).Info("收到流量查询")

		q, err := parseTrafficQuery(c)
		if err != nil {
			writeQueryError(c, fields, err)
			return
		}

		rows, err := queryService.ComputeTraffic(c.Request.Context(), q)
		if err != nil {
			writeQueryError(c, fields, err)
			return
		}

		log.WithFields(fields).WithField("rows", len(rows)).Info("流量查询完成")
		c.JSON(http.StatusOK, toTrafficResp(rows))
	}
}

func parseTrafficQuery(c *gin.Context) (traffic.Query, error) {
	q := traffic.Query{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		IP:        c.Query("ip"),
	}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return traffic.Query{}, &traffic.ValidationError{
				Field:   "customer_id",
				Message: "invalid customer_id, must be an integer",
			}
		}
		q.CustomerID = id
	}
	return q, nil
}

// writeQueryError 把错误类型映射为状态码，内部错误只记录日志不返回细节
func writeQueryError(c *gin.Context, fields log.Fields, err error) {
	var vErr *traffic.ValidationError
	var rErr *traffic.RangeError

	switch {
	case errors.As(err, &vErr):
		log.WithFields(fields).WithField("field", vErr.Field).Warnf("查询参数错误: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error()})
	case errors.As(err, &rErr):
		log.WithFields(fields).Warnf("查询时间范围错误: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": rErr.Error()})
	default:
		log.WithFields(fields).Errorf("流量查询失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query traffic"})
	}
}

func toTrafficResp(rows []model.AggregateRow) []TrafficResp {
	result := make([]TrafficResp, 0, len(rows))
	for _, row := range rows {
		result = append(result, TrafficResp{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			IP:           row.IP,
			Date:         row.Date.UTC().Format(time.RFC3339),
			TotalTraffic: row.TotalTraffic,
		})
	}
	return result
}
