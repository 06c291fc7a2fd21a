package repo

import (
	"context"

	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewExchangeCredentialRepo(db *gorm.DB) *ExchangeCredentialRepo {
	return &ExchangeCredentialRepo{
		Repository: orz.NewRepository[models.ExchangeCredential, string](db),
	}
}

type ExchangeCredentialRepo struct {
	orz.Repository[models.ExchangeCredential, string]
}

// FindAllNewest 按创建时间倒序
func (r ExchangeCredentialRepo) FindAllNewest(ctx context.Context) ([]models.ExchangeCredential, error) {
	var credentials []models.ExchangeCredential
	err := r.GetDB(ctx).WithContext(ctx).
		Model(&models.ExchangeCredential{}).
		Order("created_at DESC").
		Find(&credentials).Error
	return credentials, err
}
