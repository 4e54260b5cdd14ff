package parcel_test

import (
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"Book",
		2,
		20,
		kernel.NewUUID(),
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("valid_parcel_starts_uncosted_and_unassigned", func(t *testing.T) {
		// When
		p := validParcel(t)

		// Then
		require.NoError(t, p.Validate())
		assert.Equal(t, "Book", p.Name())
		assert.InDelta(t, 2.0, p.Weight(), 0.0001)
		assert.InDelta(t, 20.0, p.PriceUSD(), 0.0001)
		assert.Nil(t, p.ShippingCost())
		assert.False(t, p.IsCostCalculated())
		assert.Nil(t, p.Company())
	})

	t.Run("validation_failures", func(t *testing.T) {
		typeID := kernel.NewUUID()
		sessionID := kernel.NewUUID()

		testCases := []struct {
			name     string
			create   func() (*parcel.Parcel, error)
			expected error
		}{
			{
				name: "empty name",
				create: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(kernel.NewUUID(), "", 1, 1, typeID, sessionID)
				},
				expected: errs.ErrValueIsRequired,
			},
			{
				name: "zero weight",
				create: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(kernel.NewUUID(), "Book", 0, 1, typeID, sessionID)
				},
				expected: errs.ErrValueIsInvalid,
			},
			{
				name: "negative weight",
				create: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(kernel.NewUUID(), "Book", -1, 1, typeID, sessionID)
				},
				expected: errs.ErrValueIsInvalid,
			},
			{
				name: "negative declared value",
				create: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(kernel.NewUUID(), "Book", 1, -0.01, typeID, sessionID)
				},
				expected: errs.ErrValueIsInvalid,
			},
			{
				name: "unconstructed type id",
				create: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(kernel.NewUUID(), "Book", 1, 1, kernel.UUID{}, sessionID)
				},
				expected: errs.ErrValueIsRequired,
			},
			{
				name: "unconstructed session id",
				create: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(kernel.NewUUID(), "Book", 1, 1, typeID, kernel.UUID{})
				},
				expected: errs.ErrValueIsRequired,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := tc.create()
				assert.Nil(t, p)
				require.ErrorIs(t, err, tc.expected)
			})
		}
	})

	t.Run("zero_declared_value_is_allowed", func(t *testing.T) {
		// When
		p, err := parcel.NewParcel(kernel.NewUUID(), "Gift", 1, 0, kernel.NewUUID(), kernel.NewUUID())

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 0.0, p.PriceUSD(), 0.0001)
	})
}

func TestParcel_SetShippingCost(t *testing.T) {
	t.Run("sets_cost_once", func(t *testing.T) {
		// Given
		p := validParcel(t)

		// When
		err := p.SetShippingCost(76.5)

		// Then
		require.NoError(t, err)
		require.NotNil(t, p.ShippingCost())
		assert.InDelta(t, 76.5, *p.ShippingCost(), 0.0001)
		assert.True(t, p.IsCostCalculated())
	})

	t.Run("second_set_is_rejected", func(t *testing.T) {
		// Given
		p := validParcel(t)
		require.NoError(t, p.SetShippingCost(76.5))

		// When
		err := p.SetShippingCost(100)

		// Then
		require.ErrorIs(t, err, parcel.ErrShippingCostAlreadySet)
		assert.InDelta(t, 76.5, *p.ShippingCost(), 0.0001)
	})

	t.Run("negative_cost_is_rejected", func(t *testing.T) {
		// Given
		p := validParcel(t)

		// When
		err := p.SetShippingCost(-1)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, p.IsCostCalculated())
	})
}

func TestParcel_AssignCompany(t *testing.T) {
	t.Run("first_claim_wins", func(t *testing.T) {
		// Given
		p := validParcel(t)
		company := kernel.NewUUID()

		// When
		err := p.AssignCompany(company)

		// Then
		require.NoError(t, err)
		require.NotNil(t, p.Company())
		assert.True(t, company.IsEqual(*p.Company()))
	})

	t.Run("second_claim_is_rejected", func(t *testing.T) {
		// Given
		p := validParcel(t)
		winner := kernel.NewUUID()
		require.NoError(t, p.AssignCompany(winner))

		// When
		err := p.AssignCompany(kernel.NewUUID())

		// Then
		require.ErrorIs(t, err, parcel.ErrCompanyAlreadyAssigned)
		assert.True(t, winner.IsEqual(*p.Company()))
	})

	t.Run("assignment_is_independent_of_costing_state", func(t *testing.T) {
		// Given
		p := validParcel(t)

		// When: claim before the cost is calculated
		err := p.AssignCompany(kernel.NewUUID())

		// Then
		require.NoError(t, err)
		assert.False(t, p.IsCostCalculated())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("restores_costed_assigned_parcel", func(t *testing.T) {
		// Given
		cost := 375.0
		company := kernel.NewUUID()

		// When
		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), "Laptop", 3, 1200,
			kernel.NewUUID(), kernel.NewUUID(),
			&cost, &company,
		)

		// Then
		require.NoError(t, err)
		assert.True(t, p.IsCostCalculated())
		assert.InDelta(t, 375.0, *p.ShippingCost(), 0.0001)
		assert.True(t, company.IsEqual(*p.Company()))
	})

	t.Run("restored_costed_parcel_stays_costed", func(t *testing.T) {
		// Given
		cost := 10.0
		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), "Book", 1, 1,
			kernel.NewUUID(), kernel.NewUUID(),
			&cost, nil,
		)
		require.NoError(t, err)

		// When
		err = p.SetShippingCost(99)

		// Then
		require.ErrorIs(t, err, parcel.ErrShippingCostAlreadySet)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		var p parcel.Parcel

		// When
		err := p.Validate()

		// Then
		assert.Equal(t, parcel.ErrParcelIsNotConstructed, err)
	})
}
