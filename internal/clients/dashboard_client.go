package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

type dashboardClient struct {
	baseClient
}

// NewDashboardClient returns a domain.DashboardAPI backed by the REST
// dashboard endpoint under baseURL.
func NewDashboardClient(baseURL string, timeout time.Duration, logger *logrus.Logger) domain.DashboardAPI {
	return &dashboardClient{
		baseClient: newBaseClient(baseURL, timeout, logger, "DashboardClient"),
	}
}

func (c *dashboardClient) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	url := fmt.Sprintf("%s/dashboard", c.baseURL)
	c.log.Debugf("DashboardClient: Requesting store statistics from %s", url)

	var stats domain.DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard statistics: %w", err)
	}

	c.log.Infof("DashboardClient: Retrieved stats (%d products, %d items in stock)",
		stats.TotalProducts, stats.TotalItemsInStock)
	return &stats, nil
}
