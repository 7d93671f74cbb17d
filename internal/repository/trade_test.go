package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anchalw11/website/internal/models"
)

func seedTrade(t *testing.T, repo TradeRepository, userID int64, asset string, date time.Time) *models.Trade {
	t.Helper()

	trade := &models.Trade{
		UserID:     userID,
		Date:       date,
		Asset:      asset,
		Direction:  "buy",
		EntryPrice: 1.1,
		ExitPrice:  1.2,
		LotSize:    0.5,
		Outcome:    "win",
	}
	if err := repo.Create(context.Background(), trade); err != nil {
		t.Fatalf("failed to seed trade: %v", err)
	}
	return trade
}

func TestTradeRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	trades := NewTradeRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "al", "a@x.com")
	other := seedUser(t, users, "bo", "b@x.com")

	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	seedTrade(t, trades, owner.ID, "EURUSD", older)
	seedTrade(t, trades, owner.ID, "XAUUSD", newer)
	seedTrade(t, trades, other.ID, "GBPUSD", newer)

	list, err := trades.ListByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2 (other users' trades excluded)", len(list))
	}
	// Newest date first.
	if list[0].Asset != "XAUUSD" || list[1].Asset != "EURUSD" {
		t.Errorf("order = [%s, %s], want [XAUUSD, EURUSD]", list[0].Asset, list[1].Asset)
	}
}

func TestTradeRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	trades := NewTradeRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "al", "a@x.com")
	other := seedUser(t, users, "bo", "b@x.com")
	trade := seedTrade(t, trades, owner.ID, "EURUSD", time.Now().UTC())

	// A foreign owner cannot delete the trade and learns nothing from the error.
	if err := trades.DeleteByID(ctx, other.ID, trade.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteByID() by non-owner error = %v, want ErrNotFound", err)
	}

	if err := trades.DeleteByID(ctx, owner.ID, trade.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}

	// Second delete finds nothing.
	if err := trades.DeleteByID(ctx, owner.ID, trade.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("repeat DeleteByID() error = %v, want ErrNotFound", err)
	}
}

func TestTradeRepository_DuplicateSignal(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	trades := NewTradeRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "al", "a@x.com")

	signalID := int64(77)
	first := &models.Trade{
		UserID: owner.ID, SignalID: &signalID, Date: time.Now().UTC(),
		Asset: "EURUSD", Direction: "buy", EntryPrice: 1.1, Outcome: "pending",
	}
	if err := trades.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := &models.Trade{
		UserID: owner.ID, SignalID: &signalID, Date: time.Now().UTC(),
		Asset: "EURUSD", Direction: "buy", EntryPrice: 1.1, Outcome: "pending",
	}
	if err := trades.Create(ctx, second); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Create() error = %v, want ErrDuplicateKey for reused signal id", err)
	}
}
