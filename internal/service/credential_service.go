package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Hidayat0507/tradebot-sub001/internal/botconfig"
	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/Hidayat0507/tradebot-sub001/internal/repo"
	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/Hidayat0507/tradebot-sub001/pkg/nostd"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkCredentialRequest 绑定交易所凭证
type LinkCredentialRequest struct {
	Exchange   string `json:"exchange" validate:"required,credential_exchange"`
	Label      string `json:"label" validate:"required,max=100"`
	APIKey     string `json:"api_key" validate:"required,max=256"`
	APISecret  string `json:"api_secret" validate:"required,max=256"`
	Passphrase string `json:"passphrase" validate:"max=256"`
}

type CredentialService struct {
	*repo.ExchangeCredentialRepo

	logger *zap.Logger
	sealer *nostd.Sealer
}

func NewCredentialService(logger *zap.Logger, db *gorm.DB, sealer *nostd.Sealer) *CredentialService {
	return &CredentialService{
		ExchangeCredentialRepo: repo.NewExchangeCredentialRepo(db),
		logger:                 logger,
		sealer:                 sealer,
	}
}

// Link 加密保存凭证
func (s *CredentialService) Link(ctx context.Context, req LinkCredentialRequest) (*models.ExchangeCredential, error) {
	exchange := strings.TrimSpace(req.Exchange)
	if !botconfig.CredentialExchanges.Contains(exchange) {
		return nil, xe.BadRequest(fmt.Sprintf("Unsupported exchange: %s", exchange)).
			WithHelp("Supported exchanges: " + strings.Join(botconfig.CredentialExchanges.List(), ", "))
	}

	apiKey := strings.TrimSpace(req.APIKey)
	sealedKey, err := s.sealer.Seal(apiKey)
	if err != nil {
		return nil, fmt.Errorf("seal api key: %w", err)
	}
	sealedSecret, err := s.sealer.Seal(strings.TrimSpace(req.APISecret))
	if err != nil {
		return nil, fmt.Errorf("seal api secret: %w", err)
	}
	var sealedPassphrase string
	if passphrase := strings.TrimSpace(req.Passphrase); passphrase != "" {
		if sealedPassphrase, err = s.sealer.Seal(passphrase); err != nil {
			return nil, fmt.Errorf("seal passphrase: %w", err)
		}
	}

	credential := &models.ExchangeCredential{
		ID:         ulid.Make().String(),
		Exchange:   exchange,
		Label:      strings.TrimSpace(req.Label),
		APIKey:     sealedKey,
		APISecret:  sealedSecret,
		Passphrase: sealedPassphrase,
		APIKeyHint: nostd.Mask(apiKey),
	}
	if err := s.ExchangeCredentialRepo.Create(ctx, credential); err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}

	s.logger.Info("exchange credential linked",
		zap.String("credential_id", credential.ID),
		zap.String("exchange", credential.Exchange))
	return credential, nil
}

func (s *CredentialService) List(ctx context.Context) ([]models.ExchangeCredential, error) {
	return s.ExchangeCredentialRepo.FindAllNewest(ctx)
}

func (s *CredentialService) Unlink(ctx context.Context, id string) error {
	if _, err := s.ExchangeCredentialRepo.FindById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xe.ErrCredentialNotFound
		}
		return fmt.Errorf("find credential %s: %w", id, err)
	}
	if err := s.ExchangeCredentialRepo.DeleteById(ctx, id); err != nil {
		return fmt.Errorf("delete credential %s: %w", id, err)
	}
	s.logger.Info("exchange credential unlinked", zap.String("credential_id", id))
	return nil
}
