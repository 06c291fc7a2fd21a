package service

import (
	"context"
	"time"

	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/Hidayat0507/tradebot-sub001/internal/repo"
	"gorm.io/gorm"
)

// Stats 看板统计
type Stats struct {
	BotsTotal      int64            `json:"bots_total"`
	BotsEnabled    int64            `json:"bots_enabled"`
	AlertsTotal    int64            `json:"alerts_total"`
	AlertsLast24h  int64            `json:"alerts_last_24h"`
	AlertsByStatus map[string]int64 `json:"alerts_by_status"`
}

type StatsService struct {
	botRepo   *repo.BotRepo
	alertRepo *repo.AlertRepo
	now       func() time.Time
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		botRepo:   repo.NewBotRepo(db),
		alertRepo: repo.NewAlertRepo(db),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *StatsService) Summary(ctx context.Context) (*Stats, error) {
	var (
		stats Stats
		err   error
	)
	if stats.BotsTotal, err = s.botRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.BotsEnabled, err = s.botRepo.CountEnabled(ctx); err != nil {
		return nil, err
	}
	if stats.AlertsLast24h, err = s.alertRepo.CountSince(ctx, s.now().Add(-24*time.Hour)); err != nil {
		return nil, err
	}

	byStatus, err := s.alertRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	// 状态固定输出，缺失的计为0
	stats.AlertsByStatus = map[string]int64{}
	for _, status := range []models.AlertStatus{models.AlertStatusAccepted, models.AlertStatusSimulated, models.AlertStatusRejected} {
		stats.AlertsByStatus[string(status)] = byStatus[status]
		stats.AlertsTotal += byStatus[status]
	}
	return &stats, nil
}
