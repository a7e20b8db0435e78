package domain

import "context"

// ProductAPI is the backend product surface consumed by the engines.
type ProductAPI interface {
	GetAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, payload ProductPayload) (*Product, error)
	Update(ctx context.Context, id int, payload ProductPayload) (*Product, error)
	Delete(ctx context.Context, id int) error
}

// CategoryAPI is the backend category surface consumed by the engines.
type CategoryAPI interface {
	GetAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, payload CategoryPayload) (*Category, error)
	Update(ctx context.Context, id int, payload CategoryPayload) (*Category, error)
	Delete(ctx context.Context, id int) error
}

// DashboardAPI serves the aggregate store statistics.
type DashboardAPI interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
