package loyalty

import (
	"context"
	"time"

	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/erp/mobileapi/internal/domain/shared"
)

// LedgerFilter narrows the ledger listing to one customer when set.
type LedgerFilter struct {
	Customer string `form:"customer"`
}

// LoyaltyEntryView is one ledger row as surfaced to callers. Dates are
// formatted the way the record store renders them.
type LoyaltyEntryView struct {
	Name               string  `json:"name"`
	Customer           string  `json:"customer"`
	LoyaltyPoints      float64 `json:"loyalty_points"`
	LoyaltyProgram     string  `json:"loyalty_program"`
	LoyaltyProgramTier string  `json:"loyalty_program_tier"`
	PostingDate        string  `json:"posting_date"`
	ExpiryDate         *string `json:"expiry_date"`
	InvoiceType        string  `json:"invoice_type"`
	Invoice            string  `json:"invoice"`
	Company            string  `json:"company"`
	DocStatus          int     `json:"docstatus"`
	Creation           string  `json:"creation"`
	Modified           string  `json:"modified"`
}

// LedgerService lists raw loyalty ledger entries. Each stored entry maps to
// exactly one output row; no aggregation happens here.
type LedgerService struct {
	entries partner.LoyaltyEntryRepository
	gate    shared.ReadGate
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(entries partner.LoyaltyEntryRepository, gate shared.ReadGate) *LedgerService {
	if gate == nil {
		gate = shared.AllowAll
	}
	return &LedgerService{
		entries: entries,
		gate:    gate,
	}
}

// List returns ledger entries sorted by posting date descending, creation
// timestamp descending. Entries the caller may not see are dropped.
func (s *LedgerService) List(ctx context.Context, filter LedgerFilter) ([]LoyaltyEntryView, error) {
	entries, err := s.entries.List(ctx, partner.LoyaltyEntryFilter{Customer: filter.Customer})
	if err != nil {
		return nil, err
	}

	rows := make([]LoyaltyEntryView, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !s.gate.CanRead(shared.RecordLoyaltyEntry, e.Name) {
			continue
		}
		rows = append(rows, LoyaltyEntryView{
			Name:               e.Name,
			Customer:           e.Customer,
			LoyaltyPoints:      toFloat64(e.Points),
			LoyaltyProgram:     e.Program,
			LoyaltyProgramTier: e.ProgramTier,
			PostingDate:        formatDate(e.PostingDate),
			ExpiryDate:         formatDatePtr(e.ExpiryDate),
			InvoiceType:        e.InvoiceType,
			Invoice:            e.Invoice,
			Company:            e.Company,
			DocStatus:          e.DocStatus,
			Creation:           formatDatetime(e.Creation),
			Modified:           formatDatetime(e.Modified),
		})
	}
	return rows, nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func formatDatetime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
