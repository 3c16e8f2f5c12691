package shared

// Record type names used by the visibility predicate.
const (
	RecordItem         = "Item"
	RecordCustomer     = "Customer"
	RecordSalesOrder   = "Sales Order"
	RecordLoyaltyEntry = "Loyalty Point Entry"
)

// ReadGate decides whether the current caller may see a record. The actual
// permission rules live outside this service; implementations are injected at
// wiring time.
type ReadGate interface {
	CanRead(recordType, name string) bool
}

// ReadGateFunc adapts a function to the ReadGate interface.
type ReadGateFunc func(recordType, name string) bool

// CanRead implements ReadGate.
func (f ReadGateFunc) CanRead(recordType, name string) bool {
	return f(recordType, name)
}

// AllowAll is the default gate when no permission collaborator is configured.
var AllowAll ReadGate = ReadGateFunc(func(string, string) bool { return true })
