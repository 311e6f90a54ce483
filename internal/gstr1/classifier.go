package gstr1

import (
	"fmt"

	"gstr1/internal/domain"
)

// Classify returns the category and sub-category of inv. Each call evaluates
// the rules against a fresh memo.
func Classify(inv *domain.InvoiceRecord) (domain.InvoiceCategory, domain.InvoiceSubCategory) {
	return classifyWith(NewConditions(inv))
}

func classifyWith(c *Conditions) (domain.InvoiceCategory, domain.InvoiceSubCategory) {
	for i := range categoryRules {
		rule := &categoryRules[i]
		if !rule.applies(c) {
			continue
		}
		for _, sub := range rule.subCategories {
			if sub.applies(c) {
				return rule.category, sub.subCategory
			}
		}
	}
	return domain.CategoryB2CS, domain.SubCategoryB2CS
}

// AssignCategories annotates every record in place with its category and
// sub-category and returns the same slice.
func AssignCategories(records []domain.InvoiceRecord) []domain.InvoiceRecord {
	for i := range records {
		inv := &records[i]
		inv.InvoiceCategory, inv.InvoiceSubCategory = Classify(inv)
	}
	return records
}

// FilteredInvoices returns copies of the records that fall into category and,
// when subCategory is not empty, into that sub-category. The input is not
// modified.
func FilteredInvoices(
	records []domain.InvoiceRecord,
	category domain.InvoiceCategory,
	subCategory domain.InvoiceSubCategory,
) ([]domain.InvoiceRecord, error) {
	if err := checkCategory(category, subCategory); err != nil {
		return nil, err
	}

	out := make([]domain.InvoiceRecord, 0)
	for i := range records {
		inv := records[i]
		inv.InvoiceCategory, inv.InvoiceSubCategory = Classify(&inv)
		if inv.InvoiceCategory != category {
			continue
		}
		if subCategory != "" && inv.InvoiceSubCategory != subCategory {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

// ParseCategory resolves a category label ("B2B, SEZ, DE") or table code ("B2B").
func ParseCategory(s string) (domain.InvoiceCategory, error) {
	if c, ok := domain.CategoryByCode(s); ok {
		return c, nil
	}
	c := domain.InvoiceCategory(s)
	if domain.SubCategoriesOf(c) == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, s)
	}
	return c, nil
}

// ParseSubCategory resolves s as a sub-category of category. An empty s is
// allowed and selects the whole category.
func ParseSubCategory(category domain.InvoiceCategory, s string) (domain.InvoiceSubCategory, error) {
	if s == "" {
		return "", nil
	}
	sub := domain.InvoiceSubCategory(s)
	if err := checkCategory(category, sub); err != nil {
		return "", err
	}
	return sub, nil
}

func checkCategory(category domain.InvoiceCategory, subCategory domain.InvoiceSubCategory) error {
	subs := domain.SubCategoriesOf(category)
	if subs == nil {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	if subCategory == "" {
		return nil
	}
	for _, s := range subs {
		if s == subCategory {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not part of %q", domain.ErrUnknownSubCategory, subCategory, category)
}
