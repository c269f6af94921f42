package generic_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/expedition-engine/generic"
)

func incomeInput(income generic.IncomeMode, denom generic.DenomMode) generic.IncomeInput {
	return generic.IncomeInput{
		Multiplier: decimal.RequireFromString("1.5"),
		Cost:       generic.Cost{Fuel: 30, Ammo: 40},
		Base:       generic.Yield{Fuel: 100, Ammo: 50, Steel: 20, Bauxite: 10},
		Time:       60,
		Income:     income,
		Denom:      denom,
	}
}

func TestComputeIncome_Modes(t *testing.T) {
	// GIVEN: Base 100/50/20/10, multiplier 1.5, cost 30 fuel 40 ammo, 60 minutes
	// WHEN: Computing every income mode as a total
	// THEN: basic = base, gross = floor(base*1.5), net subtracts fuel/ammo only
	tests := []struct {
		mode generic.IncomeMode
		want [4]string
	}{
		{generic.IncomeBasic, [4]string{"100", "50", "20", "10"}},
		{generic.IncomeGross, [4]string{"150", "75", "30", "15"}},
		{generic.IncomeNet, [4]string{"120", "35", "30", "15"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := generic.ComputeIncome(incomeInput(tt.mode, generic.DenomTotal))
			require.NoError(t, err)
			for i, r := range generic.Resources {
				assertDecimal(t, tt.want[i], got.Of(r))
			}
		})
	}
}

func TestComputeIncome_HourlyDividesByTime(t *testing.T) {
	got, err := generic.ComputeIncome(incomeInput(generic.IncomeNet, generic.DenomHourly))
	require.NoError(t, err)

	assertDecimal(t, "2", got.Fuel)
	assertDecimal(t, "0.5833", got.Ammo.Round(4))
	assertDecimal(t, "0.5", got.Steel)
	assertDecimal(t, "0.25", got.Bauxite)
}

func TestComputeIncome_GrossFloors(t *testing.T) {
	in := generic.IncomeInput{
		Multiplier: decimal.RequireFromString("1.05"),
		Base:       generic.Yield{Fuel: 33},
		Time:       30,
		Income:     generic.IncomeGross,
		Denom:      generic.DenomTotal,
	}
	got, err := generic.ComputeIncome(in)
	require.NoError(t, err)
	assertDecimal(t, "34", got.Fuel)
}

func TestComputeIncome_NetCanBeNegative(t *testing.T) {
	in := generic.IncomeInput{
		Multiplier: decimal.NewFromInt(1),
		Cost:       generic.Cost{Fuel: 8},
		Base:       generic.Yield{Ammo: 30},
		Time:       15,
		Income:     generic.IncomeNet,
		Denom:      generic.DenomTotal,
	}
	got, err := generic.ComputeIncome(in)
	require.NoError(t, err)
	assertDecimal(t, "-8", got.Fuel)
	assertDecimal(t, "30", got.Ammo)
}

func TestComputeIncome_Idempotent(t *testing.T) {
	in := incomeInput(generic.IncomeNet, generic.DenomHourly)
	a, err := generic.ComputeIncome(in)
	require.NoError(t, err)
	b, err := generic.ComputeIncome(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeIncome_InvalidModes(t *testing.T) {
	_, err := generic.ComputeIncome(incomeInput("profit", generic.DenomTotal))
	require.Error(t, err)
	assert.ErrorIs(t, err, generic.ErrInvalidMode)

	var me *generic.InvalidModeError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "profit", me.Value)

	_, err = generic.ComputeIncome(incomeInput(generic.IncomeNet, "daily"))
	assert.ErrorIs(t, err, generic.ErrInvalidMode)
}

func TestComputeIncome_HourlyNeedsPositiveTime(t *testing.T) {
	in := incomeInput(generic.IncomeBasic, generic.DenomHourly)
	in.Time = 0
	_, err := generic.ComputeIncome(in)
	assert.ErrorIs(t, err, generic.ErrInvalidTime)

	in.Denom = generic.DenomTotal
	_, err = generic.ComputeIncome(in)
	assert.NoError(t, err)
}

func TestParseModes(t *testing.T) {
	m, err := generic.ParseIncomeMode("gross")
	require.NoError(t, err)
	assert.Equal(t, generic.IncomeGross, m)

	d, err := generic.ParseDenomMode("hourly")
	require.NoError(t, err)
	assert.Equal(t, generic.DenomHourly, d)

	_, err = generic.ParseIncomeMode("")
	assert.True(t, generic.IsClientError(err))
}
