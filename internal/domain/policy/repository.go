package policy

import "context"

// PolicyRepository is the Configuration Provider boundary. Implementations
// must return a fully-resolved CompanyPolicy: any section the company never
// configured is filled with a documented default and named in
// DefaultsApplied. The engine itself never invents defaults.
type PolicyRepository interface {
	// GetCompanyPolicy returns the resolved policy bundle for a company.
	// Returns ErrPolicyNotFound when the company is unknown.
	GetCompanyPolicy(ctx context.Context, companyID string) (CompanyPolicy, error)

	// SaveCompanyPolicy validates and persists a policy bundle.
	SaveCompanyPolicy(ctx context.Context, p CompanyPolicy) error
}
