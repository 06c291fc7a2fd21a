package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hidayat0507/tradebot-sub001/internal/config"
	"github.com/Hidayat0507/tradebot-sub001/internal/repo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AlertJanitor 定时清理过期信号
type AlertJanitor struct {
	logger    *zap.Logger
	alertRepo *repo.AlertRepo
	retention time.Duration
	spec      string
	cron      *cron.Cron
}

func NewAlertJanitor(logger *zap.Logger, db *gorm.DB, conf *config.Config) *AlertJanitor {
	retention := conf.Webhook.RetentionDays
	if retention <= 0 {
		retention = config.DefaultRetentionDays
	}
	spec := conf.Webhook.PruneSpec
	if spec == "" {
		spec = config.DefaultPruneSpec
	}
	return &AlertJanitor{
		logger:    logger,
		alertRepo: repo.NewAlertRepo(db),
		retention: time.Duration(retention) * 24 * time.Hour,
		spec:      spec,
	}
}

// Start 注册并启动定时任务
func (j *AlertJanitor) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(j.spec, j.run); err != nil {
		return fmt.Errorf("invalid prune spec %q: %w", j.spec, err)
	}
	c.Start()
	j.cron = c

	j.logger.Info("alert janitor started",
		zap.String("spec", j.spec),
		zap.Duration("retention", j.retention))
	return nil
}

// Stop 停止定时任务并等待正在执行的清理结束
func (j *AlertJanitor) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	j.cron = nil
}

// Prune 删除 now 减去保留期之前收到的信号
func (j *AlertJanitor) Prune(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-j.retention)
	deleted, err := j.alertRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune alerts before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return deleted, nil
}

func (j *AlertJanitor) run() {
	deleted, err := j.Prune(context.Background(), time.Now().UTC())
	if err != nil {
		j.logger.Error("prune alerts failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		j.logger.Info("expired alerts pruned", zap.Int64("deleted", deleted))
	}
}
