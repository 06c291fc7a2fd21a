package models

import (
	"time"

	"gorm.io/datatypes"
)

// AlertStatus 信号处理状态
type AlertStatus string

const (
	AlertStatusAccepted  AlertStatus = "accepted"  // 已接受，等待执行
	AlertStatusSimulated AlertStatus = "simulated" // 模拟模式，仅记录
	AlertStatusRejected  AlertStatus = "rejected"  // 已拒绝
)

// Alert 收到的交易信号
type Alert struct {
	ID              string         `gorm:"primaryKey;size:26" json:"id"`
	BotID           string         `gorm:"size:26;not null;index" json:"bot_id"`
	Symbol          string         `gorm:"size:32;not null" json:"symbol"`
	Action          string         `gorm:"size:8;not null" json:"action"` // buy/sell
	Price           *float64       `json:"price,omitempty"`
	OrderSize       *float64       `json:"order_size,omitempty"`
	Amount          *float64       `json:"amount,omitempty"`
	StoplossPercent *float64       `json:"stoploss_percent,omitempty"`
	Strategy        string         `gorm:"size:100" json:"strategy"`
	Status          AlertStatus    `gorm:"size:16;not null;index" json:"status"`
	Reason          string         `gorm:"size:255" json:"reason,omitempty"` // 拒绝原因
	Payload         datatypes.JSON `json:"payload"`                          // 原始请求体
	ReceivedAt      time.Time      `gorm:"not null;index" json:"received_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Alert) TableName() string {
	return "alerts"
}
