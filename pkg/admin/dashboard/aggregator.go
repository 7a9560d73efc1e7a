package dashboard

import (
	"context"
	"math"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/pkg/logger"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Growth and churn figures are static until historical snapshots are
// collected; only MRR, subscriber and search counts come from live data.
const (
	placeholderChurnRate        = 3.2
	placeholderRevenueGrowth    = 12.5
	placeholderSubscriberGrowth = 8.2
)

// Aggregator computes the admin dashboard figures.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetPlatformAnalytics aggregates platform-wide revenue and usage. MRR treats
// every active subscription as annual billing spread over twelve months.
func (a *Aggregator) GetPlatformAnalytics(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.PlatformAnalytics, error) {
	monthlyRevenue, err := uow.SubscriptionRepository().SumActiveMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	activeSubs, err := uow.SubscriptionRepository().Count(ctx, specification.ActiveSubscriptions{})
	if err != nil {
		return nil, err
	}

	totalSearches, err := uow.UsageRepository().Count(ctx, specification.Filter("action_type", string(entity.ActionTypeSearch)))
	if err != nil {
		return nil, err
	}

	return &entity.PlatformAnalytics{
		MRR:               int(math.Round(monthlyRevenue)),
		ActiveSubscribers: int(activeSubs),
		ChurnRate:         placeholderChurnRate,
		TotalSearches:     int(totalSearches),
		RevenueGrowth:     placeholderRevenueGrowth,
		SubscriberGrowth:  placeholderSubscriberGrowth,
	}, nil
}

// GetToolAnalytics summarizes one tool: active subscriber count, revenue at
// the tool's annual price, and total recorded usage events.
func (a *Aggregator) GetToolAnalytics(ctx context.Context, uow unitofwork.UnitOfWork, toolId uuid.UUID) (*entity.ToolAnalytics, error) {
	subscribers, err := uow.SubscriptionRepository().Count(ctx,
		specification.ForTool{ToolID: toolId},
		specification.ActiveSubscriptions{},
	)
	if err != nil {
		return nil, err
	}

	tool, err := uow.ToolRepository().FindOne(ctx, specification.ByID{ID: toolId})
	if err != nil {
		return nil, err
	}

	var price float64
	if tool != nil {
		price = tool.Price
	}

	usage, err := uow.UsageRepository().Count(ctx, specification.Filter("tool_id", toolId))
	if err != nil {
		return nil, err
	}

	return &entity.ToolAnalytics{
		Subscribers: int(subscribers),
		Revenue:     float64(subscribers) * price,
		Usage:       int(usage),
	}, nil
}

// GetSystemLogs reads paginated entries back from the structured log file.
func (a *Aggregator) GetSystemLogs(ctx context.Context, loggerSvc logger.ILogger, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, err := loggerSvc.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	var res []*dto.LogListResponse
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		})
	}
	return res, nil
}

// GetLogDetail retrieves a single log entry with its details payload.
func (a *Aggregator) GetLogDetail(ctx context.Context, loggerSvc logger.ILogger, logId string) (*dto.LogDetailResponse, error) {
	l, err := loggerSvc.GetLogById(logId)
	if err != nil {
		return nil, err
	}

	ts, _ := time.Parse(time.RFC3339, l.Timestamp)

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		},
		Details: l.Details,
	}, nil
}
