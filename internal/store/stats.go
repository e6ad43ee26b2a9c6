package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
)

// ExtrasStats runs the aggregate queries over the extras table.
type ExtrasStats struct {
	db bun.IDB
}

func NewExtrasStats(db bun.IDB) *ExtrasStats {
	return &ExtrasStats{db: db}
}

// IntegrationStats counts enabled features and configured integrations,
// optionally scoped to one club.
func (s *ExtrasStats) IntegrationStats(ctx context.Context, clubID *uuid.UUID) (clubsetup.IntegrationStats, error) {
	var stats clubsetup.IntegrationStats

	q := s.db.NewSelect().
		TableExpr("extras AS ex").
		ColumnExpr("COUNT(CASE WHEN ex.hour_bank = TRUE THEN 1 END) AS hour_bank_enabled").
		ColumnExpr("COUNT(CASE WHEN ex.wishlist = TRUE THEN 1 END) AS wishlist_enabled").
		ColumnExpr("COUNT(CASE WHEN ex.external_booking_system IS NOT NULL THEN 1 END) AS external_booking_count").
		ColumnExpr("COUNT(CASE WHEN ex.payment_gateway IS NOT NULL THEN 1 END) AS payment_gateway_count").
		ColumnExpr("COUNT(CASE WHEN ex.email_marketing IS NOT NULL THEN 1 END) AS email_marketing_count").
		ColumnExpr("COUNT(CASE WHEN ex.analytics_integration IS NOT NULL THEN 1 END) AS analytics_count").
		ColumnExpr("COUNT(CASE WHEN ex.social_media_integration IS NOT NULL THEN 1 END) AS social_media_count")

	if clubID != nil {
		q = q.Where("ex.club_id = ?", *clubID)
	}

	if err := q.Scan(ctx, &stats); err != nil {
		return clubsetup.IntegrationStats{}, fmt.Errorf("integration stats: %w", err)
	}
	return stats, nil
}
