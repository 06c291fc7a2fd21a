package repo

import (
	"context"

	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewBotRepo(db *gorm.DB) *BotRepo {
	return &BotRepo{
		Repository: orz.NewRepository[models.Bot, string](db),
	}
}

type BotRepo struct {
	orz.Repository[models.Bot, string]
}

// FindAllNewest 按创建时间倒序
func (r BotRepo) FindAllNewest(ctx context.Context) ([]models.Bot, error) {
	var bots []models.Bot
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.Bot{}).
		Order("created_at DESC").
		Find(&bots).Error
	return bots, err
}

// CountAll 统计未删除的机器人
func (r BotRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.Bot{}).
		Count(&count).Error
	return count, err
}

// CountEnabled 统计已启用的机器人
func (r BotRepo) CountEnabled(ctx context.Context) (int64, error) {
	var count int64
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.Bot{}).
		Where("enabled = ?", true).
		Count(&count).Error
	return count, err
}
