package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anchalw11/website/internal/models"
	"gorm.io/gorm"
)

// TradeRepository defines the interface for trade data operations.
type TradeRepository interface {
	Create(ctx context.Context, trade *models.Trade) error
	ListByUser(ctx context.Context, userID int64) ([]models.Trade, error)
	DeleteByID(ctx context.Context, userID, tradeID int64) error
}

type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository instance.
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Create(ctx context.Context, trade *models.Trade) error {
	if err := r.db.WithContext(ctx).Create(trade).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create trade: %w", err)
	}
	return nil
}

func (r *tradeRepository) ListByUser(ctx context.Context, userID int64) ([]models.Trade, error) {
	var trades []models.Trade
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for user %d: %w", userID, err)
	}
	return trades, nil
}

// DeleteByID removes the trade only if it belongs to userID. A missing row
// and a foreign-owned row are indistinguishable to the caller.
func (r *tradeRepository) DeleteByID(ctx context.Context, userID, tradeID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tradeID, userID).
		Delete(&models.Trade{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trade %d: %w", tradeID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
