package proxyrequest

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogProxyRequest(ctx context.Context, endpoint, city string, statusCode int, duration time.Duration) error
	CountByEndpoint(ctx context.Context, endpoint string) (int64, error)
}

type ProxyRequestSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ProxyRequestSQLRepository{db: db}
}

func (r *ProxyRequestSQLRepository) LogProxyRequest(ctx context.Context, endpoint, city string, statusCode int, duration time.Duration) error {
	entry := ProxyRequest{
		Endpoint:   endpoint,
		City:       city,
		StatusCode: statusCode,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  time.Now(),
	}

	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *ProxyRequestSQLRepository) CountByEndpoint(ctx context.Context, endpoint string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProxyRequest{}).Where("endpoint = ?", endpoint).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
