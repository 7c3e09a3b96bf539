package topup

import (
	"context"
	"fmt"
	"time"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/internal/utils"

	"github.com/google/uuid"
)

const defaultQRProviderURL = "https://api.qrserver.com/v1/create-qr-code/?data=%s"

type (
	// TopupService issues opaque payment references and reconciles them.
	// Confirm is trigger-agnostic: the client poll, a payment webhook and a
	// manual admin action all go through the same idempotent transition.
	TopupService interface {
		RequestTopup(ctx context.Context, req domain.RequestTopupRequest, userID string) (*domain.RequestTopupResponse, error)
		ConfirmTopup(ctx context.Context, topupID string) (*domain.TopupStatusResponse, error)
	}

	topupService struct {
		topupRepository TopupRepository
	}
)

func NewTopupService(topupRepository TopupRepository) TopupService {
	return &topupService{topupRepository: topupRepository}
}

func (s *topupService) RequestTopup(ctx context.Context, req domain.RequestTopupRequest, userID string) (*domain.RequestTopupResponse, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidTopupAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	top := &entities.Topup{
		ID:     uuid.New(),
		UserID: userUUID,
		Amount: req.Amount,
		Done:   false,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.topupRepository.CreateTopup(ctx, top); err != nil {
		return nil, err
	}

	return &domain.RequestTopupResponse{
		PaymentID: top.ID.String(),
		QR:        fmt.Sprintf(qrProviderURL(), top.ID.String()),
	}, nil
}

func (s *topupService) ConfirmTopup(ctx context.Context, topupID string) (*domain.TopupStatusResponse, error) {
	topupUUID, err := uuid.Parse(topupID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	balance, err := s.topupRepository.Confirm(ctx, topupUUID)
	if err != nil {
		return nil, err
	}

	return &domain.TopupStatusResponse{
		Done:   true,
		Credit: balance,
	}, nil
}

// qrProviderURL is the external QR image service template; the payment id is
// the only thing we ever hand it.
func qrProviderURL() string {
	if url := utils.GetConfig("QR_PROVIDER_URL"); url != "" {
		return url
	}
	return defaultQRProviderURL
}
