package loyalty

import (
	"context"
	"testing"
	"time"

	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("maps entries verbatim preserving repository order", func(t *testing.T) {
		entries := new(mockLoyaltyEntryRepository)
		svc := NewLedgerService(entries, nil)

		expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		stored := []partner.LoyaltyPointEntry{
			{
				Name:        "LPE-0002",
				Customer:    "CUST-00001",
				Points:      decimal.NewFromInt(-30),
				Program:     "Default",
				ProgramTier: "Silver",
				PostingDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				InvoiceType: "Sales Invoice",
				Invoice:     "SINV-0002",
				Company:     "Acme",
				DocStatus:   1,
				Creation:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				Modified:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			},
			{
				Name:        "LPE-0001",
				Customer:    "CUST-00001",
				Points:      decimal.NewFromInt(100),
				PostingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				ExpiryDate:  &expiry,
				Creation:    time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
				Modified:    time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
			},
		}
		entries.On("List", ctx, partner.LoyaltyEntryFilter{Customer: "CUST-00001"}).Return(stored, nil)

		rows, err := svc.List(ctx, LedgerFilter{Customer: "CUST-00001"})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "LPE-0002", rows[0].Name)
		assert.Equal(t, -30.0, rows[0].LoyaltyPoints)
		assert.Equal(t, "2025-06-02", rows[0].PostingDate)
		assert.Nil(t, rows[0].ExpiryDate)
		assert.Equal(t, "2025-06-02 09:00:00", rows[0].Creation)
		assert.Equal(t, "LPE-0001", rows[1].Name)
		require.NotNil(t, rows[1].ExpiryDate)
		assert.Equal(t, "2026-06-01", *rows[1].ExpiryDate)
	})

	t.Run("entries hidden by the read gate are dropped", func(t *testing.T) {
		entries := new(mockLoyaltyEntryRepository)
		gate := shared.ReadGateFunc(func(recordType, name string) bool { return name != "LPE-0002" })
		svc := NewLedgerService(entries, gate)

		entries.On("List", ctx, partner.LoyaltyEntryFilter{}).Return([]partner.LoyaltyPointEntry{
			{Name: "LPE-0001"},
			{Name: "LPE-0002"},
		}, nil)

		rows, err := svc.List(ctx, LedgerFilter{})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "LPE-0001", rows[0].Name)
	})

	t.Run("gateway errors propagate unmodified", func(t *testing.T) {
		entries := new(mockLoyaltyEntryRepository)
		svc := NewLedgerService(entries, nil)

		entries.On("List", ctx, partner.LoyaltyEntryFilter{}).Return(nil, assert.AnError)

		rows, err := svc.List(ctx, LedgerFilter{})

		assert.Nil(t, rows)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
