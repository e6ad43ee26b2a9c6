package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/extra/bundebug"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
)

func newSQLiteDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if os.Getenv("TEST_SQL_DEBUG") != "" {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepositoryStoreAmenityRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	_, err := db.NewCreateTable().Model((*clubsetup.Amenity)(nil)).IfNotExists().Exec(ctx)
	require.NoError(t, err)

	amenities := New(clubsetup.NewAmenityRepository(db), "Amenity")
	clubID := uuid.New()

	created, err := amenities.Create(ctx, &clubsetup.Amenity{
		ID:     uuid.New(),
		ClubID: clubID,
		Wifi:   true,
		Bar:    true,
	})
	require.NoError(t, err)

	found, err := amenities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, clubID, found.ClubID)
	assert.True(t, found.Wifi)
	assert.False(t, found.Hotel)

	found.Hotel = true
	_, err = amenities.Update(ctx, found)
	require.NoError(t, err)

	byClub, err := amenities.Get(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("am.club_id = ?", clubID)
	})
	require.NoError(t, err)
	assert.True(t, byClub.Hotel)

	count, err := amenities.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, amenities.Delete(ctx, byClub))

	_, err = amenities.GetByID(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Amenity with ID "+created.ID.String()+" not found", err.Error())

	records, err := amenities.Select(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func newAmenityStore(t *testing.T) *RepositoryStore[*clubsetup.Amenity] {
	t.Helper()
	db := newSQLiteDB(t)
	_, err := db.NewCreateTable().Model((*clubsetup.Amenity)(nil)).IfNotExists().Exec(context.Background())
	require.NoError(t, err)
	return New(clubsetup.NewAmenityRepository(db), "Amenity")
}

func TestRepositoryStoreSelectReturnsEveryRow(t *testing.T) {
	ctx := context.Background()
	amenities := newAmenityStore(t)

	for range 30 {
		_, err := amenities.Create(ctx, &clubsetup.Amenity{ID: uuid.New(), ClubID: uuid.New()})
		require.NoError(t, err)
	}

	records, err := amenities.Select(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 30)

	limited, err := amenities.Select(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Limit(5)
	})
	require.NoError(t, err)
	assert.Len(t, limited, 5)

	page, total, err := amenities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, page, 25)
	assert.Equal(t, 30, total)
}

func TestRepositoryStoreUpdateRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	amenities := newAmenityStore(t)

	stale := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	created, err := amenities.Create(ctx, &clubsetup.Amenity{
		ID:        uuid.New(),
		ClubID:    uuid.New(),
		CreatedAt: stale,
		UpdatedAt: stale,
	})
	require.NoError(t, err)

	found, err := amenities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.UpdatedAt.Equal(stale))

	found.Bar = true
	_, err = amenities.Update(ctx, found)
	require.NoError(t, err)

	reloaded, err := amenities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Bar)
	assert.True(t, reloaded.UpdatedAt.After(stale))
	assert.WithinDuration(t, time.Now(), reloaded.UpdatedAt, 5*time.Second)
	assert.True(t, reloaded.CreatedAt.Equal(stale))
}

func TestExtrasIntegrationStats(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)

	_, err := db.ExecContext(ctx, `CREATE TABLE extras (
		id TEXT PRIMARY KEY,
		club_id TEXT NOT NULL,
		hour_bank BOOLEAN NOT NULL DEFAULT FALSE,
		wishlist BOOLEAN NOT NULL DEFAULT FALSE,
		external_booking_system TEXT,
		payment_gateway TEXT,
		email_marketing TEXT,
		analytics_integration TEXT,
		social_media_integration TEXT
	)`)
	require.NoError(t, err)

	clubA, clubB := uuid.New(), uuid.New()
	rows := []struct {
		club     uuid.UUID
		hourBank bool
		wishlist bool
		payment  any
		email    any
	}{
		{clubA, true, false, "stripe", nil},
		{clubA, true, true, nil, "mailchimp"},
		{clubB, false, true, "adyen", nil},
	}
	for _, row := range rows {
		_, err := db.ExecContext(ctx,
			`INSERT INTO extras (id, club_id, hour_bank, wishlist, payment_gateway, email_marketing) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), row.club.String(), row.hourBank, row.wishlist, row.payment, row.email)
		require.NoError(t, err)
	}

	stats := NewExtrasStats(db)

	all, err := stats.IntegrationStats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, clubsetup.IntegrationStats{
		HourBankEnabled:     2,
		WishlistEnabled:     2,
		PaymentGatewayCount: 2,
		EmailMarketingCount: 1,
	}, all)

	scoped, err := stats.IntegrationStats(ctx, &clubA)
	require.NoError(t, err)
	assert.Equal(t, 2, scoped.HourBankEnabled)
	assert.Equal(t, 1, scoped.WishlistEnabled)
	assert.Equal(t, 1, scoped.PaymentGatewayCount)
	assert.Equal(t, 0, scoped.SocialMediaCount)
}
