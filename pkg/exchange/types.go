package exchange

// Market 现货交易对
type Market struct {
	Symbol string `json:"symbol"`
	Base   string `json:"base"`
	Quote  string `json:"quote"`
	Status string `json:"status"`
}

// Pair 以 BASE/QUOTE 形式展示
func (m Market) Pair() string {
	return m.Base + "/" + m.Quote
}

// Trading 是否可交易
func (m Market) Trading() bool {
	return m.Status == "TRADING"
}
