// Package models contains data models for the trade journal service.
package models

import "time"

// Trade is a single journaled trade belonging to a user.
type Trade struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	SignalID      *int64    `json:"signal_id" gorm:"uniqueIndex"`
	UserID        int64     `json:"user_id" gorm:"not null;index"`
	Date          time.Time `json:"date" gorm:"not null"`
	Asset         string    `json:"asset" gorm:"not null"`
	Direction     string    `json:"direction" gorm:"not null"` // buy or sell
	EntryPrice    float64   `json:"entry_price" gorm:"not null"`
	ExitPrice     float64   `json:"exit_price" gorm:"not null"`
	StopLoss      *float64  `json:"sl" gorm:"column:sl"`
	TakeProfit    *float64  `json:"tp" gorm:"column:tp"`
	LotSize       float64   `json:"lot_size" gorm:"not null"`
	TradeDuration string    `json:"trade_duration,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Outcome       string    `json:"outcome" gorm:"not null"` // win, loss or pending
	StrategyTag   string    `json:"strategy_tag,omitempty"`
	PropFirm      string    `json:"prop_firm,omitempty"`
	ScreenshotURL string    `json:"screenshot_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Trade model.
func (Trade) TableName() string {
	return "trades"
}
