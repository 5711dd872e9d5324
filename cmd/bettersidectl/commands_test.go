package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"betterside.backend/internal/infrastructure/models"
)

func useTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	orig := openDB
	openDB = func() (*gorm.DB, func(), error) { return db, func() {}, nil }
	t.Cleanup(func() {
		openDB = orig
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestMigrate(t *testing.T) {
	db := useTestDB(t, "ctl_migrate")

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Migration complete.")
	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestMigrate_OpenError(t *testing.T) {
	orig := openDB
	openDB = func() (*gorm.DB, func(), error) { return nil, nil, errors.New("connection refused") }
	t.Cleanup(func() { openDB = orig })

	_, err := run(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCommands_ReleasePool(t *testing.T) {
	db := useTestDB(t, "ctl_release")
	closed := 0
	openDB = func() (*gorm.DB, func(), error) { return db, func() { closed++ }, nil }

	_, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	_, err = run(t, "marketing", "request-status", "--id", "0190a5e4-7a3c-7cc1-9a7e-3c1b2f4d5e6f", "--status", "completed")
	require.Error(t, err)
	assert.Equal(t, 2, closed)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := useTestDB(t, "ctl_seed")
	_, err := run(t, "migrate")
	require.NoError(t, err)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed complete.")
	assert.Contains(t, out, "rahul.sharma@example.com / password123")

	assert.EqualValues(t, 4, count(t, db, &models.User{}))
	assert.EqualValues(t, 2, count(t, db, &models.CpProfile{}))
	assert.EqualValues(t, 2, count(t, db, &models.Project{}))
	assert.EqualValues(t, 3, count(t, db, &models.CpProjectMap{}))
	assert.EqualValues(t, 6, count(t, db, &models.Lead{}))
	assert.EqualValues(t, 4, count(t, db, &models.Ad{}))
	assert.EqualValues(t, 3, count(t, db, &models.MarketingCounter{}))

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "user developer@godrej.com exists, skipping")

	assert.EqualValues(t, 4, count(t, db, &models.User{}))
	assert.EqualValues(t, 2, count(t, db, &models.Project{}))
	assert.EqualValues(t, 3, count(t, db, &models.CpProjectMap{}))
	assert.EqualValues(t, 6, count(t, db, &models.Lead{}))
	assert.EqualValues(t, 4, count(t, db, &models.Ad{}))

	var counter models.MarketingCounter
	require.NoError(t, db.Order("creatives_shared DESC").First(&counter).Error)
	assert.Equal(t, 15, counter.CreativesShared)
	assert.Equal(t, 8, counter.EdmsShared)
}

func TestMarketingIncrement(t *testing.T) {
	db := useTestDB(t, "ctl_marketing")
	_, err := run(t, "migrate")
	require.NoError(t, err)
	_, err = run(t, "seed")
	require.NoError(t, err)

	var cp models.User
	require.NoError(t, db.Where("email = ?", "priya.patel@example.com").First(&cp).Error)

	out, err := run(t, "marketing", "increment", "--cp-id", cp.ID.String(), "--creatives", "2", "--edms", "1")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, cp.ID.String(), got["cpId"])
	assert.Nil(t, got["projectId"])
	assert.EqualValues(t, 2, got["creativesShared"])
	assert.EqualValues(t, 1, got["edmsShared"])

	out, err = run(t, "marketing", "increment", "--cp-id", cp.ID.String(), "--creatives", "3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 5, got["creativesShared"])
	assert.EqualValues(t, 1, got["edmsShared"])
}

func TestMarketingIncrement_Validation(t *testing.T) {
	useTestDB(t, "ctl_marketing_invalid")
	_, err := run(t, "migrate")
	require.NoError(t, err)

	_, err = run(t, "marketing", "increment")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cp-id")

	_, err = run(t, "marketing", "increment", "--cp-id", "not-a-uuid")
	require.Error(t, err)

	_, err = run(t, "marketing", "increment", "--cp-id", "0190a5e4-7a3c-7cc1-9a7e-3c1b2f4d5e6f", "--edms", "-1")
	require.Error(t, err)
	assert.Equal(t, "edms: must be at least 0", err.Error())

	_, err = run(t, "marketing", "increment", "--cp-id", "0190a5e4-7a3c-7cc1-9a7e-3c1b2f4d5e6f", "--creatives", "-3", "--edms", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creatives: must be at least 0")
	assert.Contains(t, err.Error(), "edms: must be at least 0")
}

func TestMarketingRequestStatus_BadInput(t *testing.T) {
	useTestDB(t, "ctl_request_status")

	_, err := run(t, "marketing", "request-status", "--id", "nope", "--status", "completed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --id")
}

func TestMarketingRequestStatus_ReportsDetail(t *testing.T) {
	useTestDB(t, "ctl_request_status_detail")
	_, err := run(t, "migrate")
	require.NoError(t, err)

	_, err = run(t, "marketing", "request-status", "--id", "0190a5e4-7a3c-7cc1-9a7e-3c1b2f4d5e6f", "--status", "bogus")
	require.Error(t, err)
	assert.Equal(t, "status: must be one of pending, in_progress, completed, cancelled", err.Error())

	_, err = run(t, "marketing", "request-status", "--id", "0190a5e4-7a3c-7cc1-9a7e-3c1b2f4d5e6f", "--status", "completed")
	require.Error(t, err)
	assert.Equal(t, "Marketing request not found", err.Error())
}

func TestAdsMetrics(t *testing.T) {
	db := useTestDB(t, "ctl_ads")
	_, err := run(t, "migrate")
	require.NoError(t, err)
	_, err = run(t, "seed")
	require.NoError(t, err)

	var ad models.Ad
	require.NoError(t, db.Where("title = ?", "Site Visit Campaign").First(&ad).Error)

	out, err := run(t, "ads", "metrics", "--id", ad.ID.String(), "--impressions", "1200", "--clicks", "85")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 1200, got["impressions"])
	assert.EqualValues(t, 85, got["clicks"])
	assert.EqualValues(t, 0, got["leads"])

	_, err = run(t, "ads", "metrics", "--id", ad.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "At least one metric is required")

	_, err = run(t, "ads", "metrics", "--id", "0190a5e4-7a3c-7cc1-9a7e-3c1b2f4d5e6f", "--clicks", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ad not found")
}
