package main

import (
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/config"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func welfareConfig(routes string) config.WelfareConfig {
	return config.WelfareConfig{
		SocialInsuranceRate:      decimal.RequireFromString("0.105"),
		SocialInsuranceMinMonths: 6,
		BonusAmount:              decimal.NewFromInt(500000),
		TransportRatePerKm:       decimal.NewFromInt(4000),
		TransportRoutes:          routes,
	}
}

func TestBuildProviders_Order(t *testing.T) {
	providers, err := buildProviders(welfareConfig(""))

	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, welfare.KindSocialInsurance, providers[0].Details().Kind)
	assert.Equal(t, welfare.KindBonus, providers[1].Details().Kind)
	assert.Equal(t, welfare.KindTransportation, providers[2].Details().Kind)
}

func TestBuildProviders_RouteOverride(t *testing.T) {
	providers, err := buildProviders(welfareConfig("Quan 1=12; Nha Be=20"))
	require.NoError(t, err)

	emp, err := employee.NewIntern(employee.Profile{ID: "IT001", Name: "Tran Thi B", Address: "Quan 1, TP.HCM"}, decimal.NewFromInt(3000000), 0)
	require.NoError(t, err)

	// Act
	impact := providers[2].CalculateImpact(emp)

	// Assert
	assert.True(t, impact.Equal(decimal.NewFromInt(48000)), impact.String())
}

func TestBuildProviders_BadRoutes(t *testing.T) {
	_, err := buildProviders(welfareConfig("Quan 1"))

	assert.ErrorIs(t, err, welfare.ErrInvalidRoute)
}
