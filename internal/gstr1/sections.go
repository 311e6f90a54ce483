package gstr1

import "gstr1/internal/domain"

type subCategoryRule struct {
	subCategory domain.InvoiceSubCategory
	applies     func(*Conditions) bool
}

type categoryRule struct {
	category      domain.InvoiceCategory
	applies       func(*Conditions) bool
	subCategories []subCategoryRule
}

// categoryRules is evaluated top-down and the first matching category wins.
// The order is the statutory precedence between sections: nil-rated supplies
// before everything else, exports before B2C (Large), B2C (Large) before B2C
// (Others).
var categoryRules = []categoryRule{
	{
		category: domain.CategoryNilExempt,
		applies:  (*Conditions).IsNilRatedExemptedOrNonGST,
		subCategories: []subCategoryRule{
			{domain.SubCategoryNilRated, (*Conditions).IsNilRated},
			{domain.SubCategoryExempted, (*Conditions).IsExempted},
			{domain.SubCategoryNonGST, (*Conditions).IsNonGST},
		},
	},
	{
		category: domain.CategoryB2B,
		applies:  isB2B,
		subCategories: []subCategoryRule{
			{domain.SubCategoryB2BReverseCharge, isReverseChargeDeemedExport},
			{domain.SubCategorySEZWP, isSEZWithPayment},
			{domain.SubCategorySEZWOP, isSEZWithoutPayment},
			{domain.SubCategoryDE, isDeemedExport},
			{domain.SubCategoryB2BRegular, isNotReverseCharge},
			{domain.SubCategoryB2BReverseCharge, always},
		},
	},
	{
		category: domain.CategoryEXP,
		applies:  isExportInvoice,
		subCategories: []subCategoryRule{
			{domain.SubCategoryEXPWP, isExportWithGST},
			{domain.SubCategoryEXPWOP, always},
		},
	},
	{
		category:      domain.CategoryB2CL,
		applies:       isB2CL,
		subCategories: []subCategoryRule{{domain.SubCategoryB2CL, always}},
	},
	{
		category:      domain.CategoryB2CS,
		applies:       isB2CS,
		subCategories: []subCategoryRule{{domain.SubCategoryB2CS, always}},
	},
	{
		category:      domain.CategoryCDNR,
		applies:       isCDNR,
		subCategories: []subCategoryRule{{domain.SubCategoryCDNR, always}},
	},
	{
		category:      domain.CategoryCDNUR,
		applies:       isCDNUR,
		subCategories: []subCategoryRule{{domain.SubCategoryCDNUR, always}},
	},
}

func always(*Conditions) bool { return true }

func isB2B(c *Conditions) bool {
	return !c.IsCNDN() && c.HasGSTINAndIsNotExport()
}

func isReverseChargeDeemedExport(c *Conditions) bool {
	return c.inv.IsReverseCharge && c.inv.GSTCategory == domain.GSTCategoryDeemedExport
}

func isSEZWithPayment(c *Conditions) bool {
	return c.inv.GSTCategory == domain.GSTCategorySEZ && c.inv.IsExportWithGST
}

func isSEZWithoutPayment(c *Conditions) bool {
	return c.inv.GSTCategory == domain.GSTCategorySEZ && !c.inv.IsExportWithGST
}

func isDeemedExport(c *Conditions) bool {
	return c.inv.GSTCategory == domain.GSTCategoryDeemedExport
}

func isNotReverseCharge(c *Conditions) bool {
	return !c.inv.IsReverseCharge
}

func isExportInvoice(c *Conditions) bool {
	return !c.IsCNDN() && c.IsExport()
}

func isExportWithGST(c *Conditions) bool {
	return c.inv.IsExportWithGST
}

func isB2CL(c *Conditions) bool {
	return !c.IsCNDN() &&
		!c.HasGSTINAndIsNotExport() &&
		!c.IsExport() &&
		c.IsB2CLInvoice()
}

// isB2CS leaves out unregistered notes that pass the B2C (Large) value test;
// those are reported as CDNUR.
func isB2CS(c *Conditions) bool {
	return !c.HasGSTINAndIsNotExport() &&
		!c.IsExport() &&
		!(c.IsCNDN() && c.IsB2CLCNDN())
}

func isCDNR(c *Conditions) bool {
	return c.IsCNDN() && c.HasGSTINAndIsNotExport()
}

func isCDNUR(c *Conditions) bool {
	return c.IsCNDN() &&
		!c.HasGSTINAndIsNotExport() &&
		(c.IsExport() || c.IsB2CLCNDN())
}
