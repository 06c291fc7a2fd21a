package models

import (
	"time"

	"gorm.io/gorm"
)

// Bot 交易机器人配置
type Bot struct {
	ID                 string         `gorm:"primaryKey;size:26" json:"id"`
	Name               string         `gorm:"size:100;not null" json:"name"`
	Exchange           string         `gorm:"size:32;not null;index" json:"exchange"`
	Pair               string         `gorm:"size:32;not null" json:"pair"`
	MaxPositionSize    *float64       `json:"max_position_size"`
	StoplossPercentage *float64       `json:"stoploss_percentage"`
	Enabled            bool           `gorm:"not null;index" json:"enabled"`
	APIKey             string         `gorm:"type:text;not null" json:"-"` // 加密存储
	APISecret          string         `gorm:"type:text;not null" json:"-"` // 加密存储
	APIKeyHint         string         `gorm:"size:16" json:"api_key_hint"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Bot) TableName() string {
	return "bots"
}
