package handler

import (
	"time"

	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/Hidayat0507/tradebot-sub001/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// CredentialHandler 交易所凭证接口
type CredentialHandler struct {
	credentialService *service.CredentialService
}

func NewCredentialHandler(credentialService *service.CredentialService) *CredentialHandler {
	return &CredentialHandler{credentialService: credentialService}
}

type credentialView struct {
	ID            string    `json:"id"`
	Exchange      string    `json:"exchange"`
	Label         string    `json:"label"`
	APIKeyHint    string    `json:"api_key_hint"`
	HasPassphrase bool      `json:"has_passphrase"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCredentialView(item models.ExchangeCredential, _ int) credentialView {
	return credentialView{
		ID:            item.ID,
		Exchange:      item.Exchange,
		Label:         item.Label,
		APIKeyHint:    item.APIKeyHint,
		HasPassphrase: item.Passphrase != "",
		CreatedAt:     item.CreatedAt,
	}
}

// Link 绑定凭证
// POST /api/exchange-credentials
func (h *CredentialHandler) Link(c echo.Context) error {
	var req service.LinkCredentialRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	credential, err := h.credentialService.Link(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, toCredentialView(*credential, 0))
}

// List 凭证列表
// GET /api/exchange-credentials
func (h *CredentialHandler) List(c echo.Context) error {
	items, err := h.credentialService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, lo.Map(items, toCredentialView))
}

// Unlink 解绑凭证
// DELETE /api/exchange-credentials/:id
func (h *CredentialHandler) Unlink(c echo.Context) error {
	if err := h.credentialService.Unlink(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, nil)
}

func (h *CredentialHandler) RegisterRoutes(api *echo.Group) {
	credentials := api.Group("/exchange-credentials")
	credentials.POST("", h.Link)
	credentials.GET("", h.List)
	credentials.DELETE("/:id", h.Unlink)
}
