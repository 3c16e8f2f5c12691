package partner

import "context"

// Customer is the partner read model surfaced by the loyalty balance listing.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	IsBFFMember bool   `json:"is_bff_member"`
	Group       string `json:"group"`
	Territory   string `json:"territory"`
	Disabled    bool   `json:"disabled"`
}

// CustomerRepository provides read access to customers.
type CustomerRepository interface {
	// ListEnabled returns all non-disabled customers ordered by customer name.
	ListEnabled(ctx context.Context) ([]Customer, error)

	// FindByID returns the customer with the given id regardless of its
	// disabled flag (an explicit request wins over the visibility default).
	// Returns shared.ErrNotFound when no such customer exists.
	FindByID(ctx context.Context, id string) (*Customer, error)
}
