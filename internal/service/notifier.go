package service

// Notifier 推送文本消息，telegram.Telegram 实现了该接口
type Notifier interface {
	Notify(chatId, msg string) error
}
