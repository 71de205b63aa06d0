//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/internal/rules/store"
	"compliance-advisor/pkg/platform/sentinel"
	"compliance-advisor/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	now   time.Time
	cache *store.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.now = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	s.cache = store.NewRedisCache(s.redis.Client, time.Hour, store.WithRedisClock(func() time.Time { return s.now }))
}

func (s *RedisCacheSuite) TestTransferRoundTrip() {
	ctx := context.Background()
	rules := models.NewTransferRules(models.TransferRulesInput{
		RestrictedCountries:         []string{"Russia", "Iran"},
		EnhancedMonitoringCountries: []string{"Turkey"},
		CurrencyRestrictions:        map[string]string{"RUB": models.CurrencyStatusProhibited},
		SourceReference:             "https://wiki.example.com/pages/101",
		FetchedAt:                   s.now,
		Origin:                      models.OriginRemote,
	})

	s.Require().NoError(s.cache.SaveTransferRules(ctx, rules))

	found, err := s.cache.FindTransferRules(ctx)
	s.Require().NoError(err)
	s.True(found.IsRestricted("Iran"))
	s.True(found.RequiresEnhancedMonitoring("Turkey"))
	s.True(found.IsCurrencyProhibited("RUB"))
	s.Equal(rules.SourceReference, found.SourceReference)
	s.Equal("15-45 EUR", found.SettlementSystems[models.SystemSWIFT].Fee.String())
}

func (s *RedisCacheSuite) TestCompanyRoundTripKeepsActivityOrder() {
	ctx := context.Background()
	rules := models.NewCompanyRules(models.CompanyRulesInput{
		ProhibitedActivities: []string{"online casino", "gambling"},
		RestrictedActivities: []string{"charity"},
		RestrictedCountries:  []string{"Syria"},
		Origin:               models.OriginRemote,
	})

	s.Require().NoError(s.cache.SaveCompanyRules(ctx, rules))

	found, err := s.cache.FindCompanyRules(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"online casino", "gambling"}, found.ProhibitedActivities)
	s.True(found.IsRestricted("Syria"))
}

func (s *RedisCacheSuite) TestStaleEntryIsNotFound() {
	ctx := context.Background()
	s.Require().NoError(s.cache.SaveCompanyRules(ctx, models.NewCompanyRules(models.CompanyRulesInput{
		RestrictedCountries: []string{"Cuba"},
	})))

	s.now = s.now.Add(time.Hour)
	_, err := s.cache.FindCompanyRules(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestMissingKeyIsNotFound() {
	_, err := s.cache.FindTransferRules(context.Background())
	s.ErrorIs(err, sentinel.ErrNotFound)
}
