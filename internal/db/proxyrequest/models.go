package proxyrequest

import (
	"time"
)

// ProxyRequest records one forwarded call. Only request metadata is kept.
type ProxyRequest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Endpoint   string    `json:"endpoint" gorm:"index:idx_endpoint_created_at"`
	City       string    `json:"city" gorm:"index:idx_city"`
	StatusCode int       `json:"status_code" gorm:"column:status_code"`
	DurationMs int64     `json:"duration_ms" gorm:"column:duration_ms"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_endpoint_created_at"`
}

func (ProxyRequest) TableName() string {
	return "proxy_requests"
}
