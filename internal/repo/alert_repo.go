package repo

import (
	"context"
	"time"

	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewAlertRepo(db *gorm.DB) *AlertRepo {
	return &AlertRepo{
		Repository: orz.NewRepository[models.Alert, string](db),
	}
}

type AlertRepo struct {
	orz.Repository[models.Alert, string]
}

// FindRecentByBot 获取机器人最近的信号
func (r AlertRepo) FindRecentByBot(ctx context.Context, botID string, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.Alert{}).
		Where("bot_id = ?", botID).
		Order("received_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

// CountSince 统计指定时间之后收到的信号
func (r AlertRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.Alert{}).
		Where("received_at >= ?", since).
		Count(&count).Error
	return count, err
}

// CountByStatus 按状态分组统计
func (r AlertRepo) CountByStatus(ctx context.Context) (map[models.AlertStatus]int64, error) {
	var rows []struct {
		Status models.AlertStatus
		Total  int64
	}
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.Alert{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[models.AlertStatus]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Total
	}
	return result, nil
}

// DeleteBefore 删除指定时间之前的信号，返回删除数量
func (r AlertRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.GetDB(ctx).WithContext(ctx).
		Where("received_at < ?", before).
		Delete(&models.Alert{})
	return result.RowsAffected, result.Error
}
