package fallback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"compliance-advisor/internal/rules/models"
)

func TestTransfer(t *testing.T) {
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	rules := Transfer(now)

	assert.Equal(t, models.OriginFallback, rules.Origin)
	assert.Equal(t, SourceReference, rules.SourceReference)
	assert.Equal(t, now, rules.FetchedAt)
	assert.Len(t, rules.RestrictedCountries, 8)
	assert.Len(t, rules.EnhancedMonitoringCountries, 10)
	for _, c := range []string{"RUB", "BYN", "IRR", "KPW", "SYP", "CUP", "VES"} {
		assert.True(t, rules.IsCurrencyProhibited(c), c)
	}
	assert.False(t, rules.IsCurrencyProhibited("EUR"))
	assert.True(t, rules.IsRestricted("North Korea"))
	assert.True(t, rules.RequiresEnhancedMonitoring("Philippines"))
	assert.Len(t, rules.SettlementSystems, 4)
}

func TestCompany(t *testing.T) {
	rules := Company(time.Now())

	assert.Equal(t, models.OriginFallback, rules.Origin)
	assert.Len(t, rules.RestrictedCountries, 8)
	assert.Len(t, rules.EnhancedDueDiligenceCountries, 10)
	assert.Len(t, rules.ProhibitedActivities, 13)
	assert.Len(t, rules.RestrictedActivities, 12)
	assert.Equal(t, "gambling", rules.ProhibitedActivities[0])
	assert.True(t, rules.IsRestricted("Afghanistan"))
	assert.True(t, rules.RequiresEDD("Cyprus"))
}

func TestSnapshotsAreIndependent(t *testing.T) {
	a := Company(time.Now())
	a.ProhibitedActivities[0] = "changed"
	a.RestrictedCountries["Norway"] = struct{}{}

	b := Company(time.Now())
	assert.Equal(t, "gambling", b.ProhibitedActivities[0])
	assert.False(t, b.IsRestricted("Norway"))
}
