package preview

import (
	"context"
	"errors"
	"sync"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/payroll-engine-go/internal/fixtures"
	"github.com/cmlabs-hris/payroll-engine-go/internal/service/calculation"
)

// PolicyCache memoizes one validated Calculator per company. It is explicit
// and injectable: a batch shares one cache for its lifetime and the policy
// store is hit at most once per company, however many employees the batch
// covers. Safe for concurrent use.
type PolicyCache struct {
	source policy.PolicyRepository

	mu    sync.RWMutex
	calcs map[string]*calculation.Calculator
}

func NewPolicyCache(source policy.PolicyRepository) *PolicyCache {
	return &PolicyCache{
		source: source,
		calcs:  make(map[string]*calculation.Calculator),
	}
}

// Calculator returns the memoized calculator for a company, loading and
// normalizing the policy on first use. A company without any stored policy
// computes on the documented defaults.
func (c *PolicyCache) Calculator(ctx context.Context, companyID string) (*calculation.Calculator, error) {
	c.mu.RLock()
	calc, ok := c.calcs[companyID]
	c.mu.RUnlock()
	if ok {
		return calc, nil
	}

	stored, err := c.source.GetCompanyPolicy(ctx, companyID)
	switch {
	case errors.Is(err, policy.ErrPolicyNotFound):
		stored = fixtures.DefaultCompanyPolicy(companyID)
	case err != nil:
		return nil, err
	default:
		stored = fixtures.Normalize(stored)
	}

	calc, err = calculation.NewCalculator(stored)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.calcs[companyID] = calc
	c.mu.Unlock()
	return calc, nil
}
