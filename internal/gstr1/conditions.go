// Package gstr1 assigns outward-supply invoice rows to GSTR-1 categories and
// folds them into per-section summaries.
package gstr1

import (
	"math"

	"gstr1/internal/domain"
)

type predicate int

const (
	predNilRated predicate = iota
	predExempted
	predNonGST
	predNilRatedExemptedOrNonGST
	predCNDN
	predExport
	predHasGSTINAndIsNotExport
	predInterState
	predB2CLCNDN
	predB2CLInvoice
)

// Conditions evaluates the atomic tests for a single invoice row. Results are
// memoised for the lifetime of the value, so a Conditions must never be reused
// for another row.
type Conditions struct {
	inv  *domain.InvoiceRecord
	memo map[predicate]bool
}

// NewConditions returns a Conditions with an empty memo bound to inv.
func NewConditions(inv *domain.InvoiceRecord) *Conditions {
	return &Conditions{inv: inv, memo: make(map[predicate]bool, 10)}
}

func (c *Conditions) cached(p predicate, eval func() bool) bool {
	if v, ok := c.memo[p]; ok {
		return v
	}
	v := eval()
	c.memo[p] = v
	return v
}

func (c *Conditions) IsNilRated() bool {
	return c.cached(predNilRated, func() bool {
		return c.inv.GSTTreatment == domain.GSTTreatmentNilRated
	})
}

func (c *Conditions) IsExempted() bool {
	return c.cached(predExempted, func() bool {
		return c.inv.GSTTreatment == domain.GSTTreatmentExempted
	})
}

func (c *Conditions) IsNonGST() bool {
	return c.cached(predNonGST, func() bool {
		return c.inv.GSTTreatment == domain.GSTTreatmentNonGST
	})
}

func (c *Conditions) IsNilRatedExemptedOrNonGST() bool {
	return c.cached(predNilRatedExemptedOrNonGST, func() bool {
		return c.IsNilRated() || c.IsExempted() || c.IsNonGST()
	})
}

// IsCNDN reports whether the row belongs to a credit or debit note.
func (c *Conditions) IsCNDN() bool {
	return c.cached(predCNDN, func() bool {
		return c.inv.IsReturn || c.inv.IsDebitNote
	})
}

func (c *Conditions) IsExport() bool {
	return c.cached(predExport, func() bool {
		return c.inv.PlaceOfSupply == domain.PlaceOfSupplyOverseas
	})
}

func (c *Conditions) HasGSTINAndIsNotExport() bool {
	return c.cached(predHasGSTINAndIsNotExport, func() bool {
		return c.inv.BillingAddressGSTIN != "" && !c.IsExport()
	})
}

// IsInterState compares the state code of the company GSTIN with that of the
// place of supply.
func (c *Conditions) IsInterState() bool {
	return c.cached(predInterState, func() bool {
		return stateCode(c.inv.CompanyGSTIN) != stateCode(c.inv.PlaceOfSupply)
	})
}

// IsB2CLCNDN applies the B2C (Large) value test to a credit or debit note. When
// the note is raised against an invoice, the larger of the two totals counts.
func (c *Conditions) IsB2CLCNDN() bool {
	return c.cached(predB2CLCNDN, func() bool {
		total := math.Abs(c.inv.InvoiceTotal)
		if c.inv.ReturnAgainst != "" {
			total = math.Max(total, math.Abs(c.inv.ReturnedInvoiceTotal))
		}
		return total > domain.B2CLimit && c.IsInterState()
	})
}

func (c *Conditions) IsB2CLInvoice() bool {
	return c.cached(predB2CLInvoice, func() bool {
		return math.Abs(c.inv.TotalAmount) > domain.B2CLimit && c.IsInterState()
	})
}

func stateCode(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[:2]
}
