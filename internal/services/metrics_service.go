package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/unmillondepredicadores/backend/internal/dto"
	"github.com/unmillondepredicadores/backend/internal/models"
)

const metricsTTL = 90 * 24 * time.Hour

// MetricsService tracks daily usage counters in Redis. Counter writes are
// best-effort: a Redis outage must never fail the request that triggered it.
type MetricsService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewMetricsService(db *gorm.DB, rdb *redis.Client) *MetricsService {
	return &MetricsService{db: db, rdb: rdb}
}

func (s *MetricsService) RecordChat(assistantType string) {
	s.incr(dailyKey("metrics:chats"))
	s.incr("metrics:assistant:" + assistantType)
}

func (s *MetricsService) RecordRegistration() {
	s.incr(dailyKey("metrics:registrations"))
}

func (s *MetricsService) RecordLogin() {
	s.incr(dailyKey("metrics:logins"))
}

func (s *MetricsService) incr(key string) {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, metricsTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("metrics counter update failed", "key", key, "error", err.Error())
	}
}

func (s *MetricsService) counter(ctx context.Context, key string) int64 {
	if s.rdb == nil {
		return 0
	}
	n, err := s.rdb.Get(ctx, key).Int64()
	if err != nil && err != redis.Nil {
		slog.Warn("metrics counter read failed", "key", key, "error", err.Error())
	}
	return n
}

// PlatformStats combines durable totals from Postgres with today's Redis
// counters.
func (s *MetricsService) PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	stats := &dto.PlatformStatsResponse{
		AssistantUsage: make(map[string]int64, len(AssistantTypes)),
	}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.Conversation{}).Count(&stats.TotalConversations).Error; err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}
	if err := s.db.Model(&models.Donation{}).Count(&stats.TotalDonations).Error; err != nil {
		return nil, fmt.Errorf("failed to count donations: %w", err)
	}
	row := s.db.Model(&models.Donation{}).
		Where("status = ?", models.DonationStatusCompleted).
		Select("COUNT(*), COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&stats.DonationsCompleted, &stats.DonationTotal); err != nil {
		return nil, fmt.Errorf("failed to sum donations: %w", err)
	}

	stats.ChatsToday = s.counter(ctx, dailyKey("metrics:chats"))
	stats.RegistrationsToday = s.counter(ctx, dailyKey("metrics:registrations"))
	stats.LoginsToday = s.counter(ctx, dailyKey("metrics:logins"))
	for _, assistant := range AssistantTypes {
		stats.AssistantUsage[assistant] = s.counter(ctx, "metrics:assistant:"+assistant)
	}

	return stats, nil
}

func dailyKey(prefix string) string {
	return prefix + ":" + time.Now().UTC().Format("2006-01-02")
}
