package models

import (
	"time"

	"gorm.io/gorm"
)

// ExchangeCredential 绑定的交易所API凭证
type ExchangeCredential struct {
	ID         string         `gorm:"primaryKey;size:26" json:"id"`
	Exchange   string         `gorm:"size:32;not null;index" json:"exchange"`
	Label      string         `gorm:"size:100;not null" json:"label"`
	APIKey     string         `gorm:"type:text;not null" json:"-"`
	APISecret  string         `gorm:"type:text;not null" json:"-"`
	Passphrase string         `gorm:"type:text" json:"-"` // OKX 等需要
	APIKeyHint string         `gorm:"size:16" json:"api_key_hint"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ExchangeCredential) TableName() string {
	return "exchange_credentials"
}
