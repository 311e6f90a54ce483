package domain

// GSTCategory is the recipient's registration category as recorded on the invoice.
type GSTCategory string

const (
	GSTCategoryRegisteredRegular     GSTCategory = "Registered Regular"
	GSTCategoryRegisteredComposition GSTCategory = "Registered Composition"
	GSTCategoryUnregistered          GSTCategory = "Unregistered"
	GSTCategorySEZ                   GSTCategory = "SEZ"
	GSTCategoryOverseas              GSTCategory = "Overseas"
	GSTCategoryDeemedExport          GSTCategory = "Deemed Export"
	GSTCategoryUINHolders            GSTCategory = "UIN Holders"
	GSTCategoryTaxDeductor           GSTCategory = "Tax Deductor"
)

// GSTTreatment is the tax treatment of a single line item.
type GSTTreatment string

const (
	GSTTreatmentTaxable    GSTTreatment = "Taxable"
	GSTTreatmentNilRated   GSTTreatment = "Nil-Rated"
	GSTTreatmentExempted   GSTTreatment = "Exempted"
	GSTTreatmentNonGST     GSTTreatment = "Non-GST"
	GSTTreatmentNotDefined GSTTreatment = "Not Defined"
)

// PlaceOfSupplyOverseas is the place-of-supply value used for exports.
const PlaceOfSupplyOverseas = "96-Other Countries"

// B2CLimit is the statutory invoice value above which an inter-state supply to an
// unregistered recipient is reported as B2C (Large).
const B2CLimit = 250000

// InvoiceCategory is a top-level GSTR-1 table.
type InvoiceCategory string

const (
	CategoryNilExempt InvoiceCategory = "Nil-Rated, Exempted, Non-GST"
	CategoryB2B       InvoiceCategory = "B2B, SEZ, DE"
	CategoryEXP       InvoiceCategory = "Exports"
	CategoryB2CL      InvoiceCategory = "B2C (Large)"
	CategoryB2CS      InvoiceCategory = "B2C (Others)"
	CategoryCDNR      InvoiceCategory = "Credit/Debit Notes (Registered)"
	CategoryCDNUR     InvoiceCategory = "Credit/Debit Notes (Unregistered)"
)

// categoryCodes maps the short return-table codes to categories.
var categoryCodes = map[string]InvoiceCategory{
	"NIL_EXEMPT": CategoryNilExempt,
	"B2B":        CategoryB2B,
	"EXP":        CategoryEXP,
	"B2CL":       CategoryB2CL,
	"B2CS":       CategoryB2CS,
	"CDNR":       CategoryCDNR,
	"CDNUR":      CategoryCDNUR,
}

// CategoryByCode returns the category for a short table code such as "B2B".
func CategoryByCode(code string) (InvoiceCategory, bool) {
	c, ok := categoryCodes[code]
	return c, ok
}

// Code returns the short table code for the category.
func (c InvoiceCategory) Code() string {
	for code, cat := range categoryCodes {
		if cat == c {
			return code
		}
	}
	return ""
}

// InvoiceSubCategory is a leaf GSTR-1 section.
type InvoiceSubCategory string

const (
	SubCategoryB2BRegular       InvoiceSubCategory = "B2B Regular"
	SubCategoryB2BReverseCharge InvoiceSubCategory = "B2B Reverse Charge"
	SubCategorySEZWP            InvoiceSubCategory = "SEZWP"
	SubCategorySEZWOP           InvoiceSubCategory = "SEZWOP"
	SubCategoryDE               InvoiceSubCategory = "Deemed Exports"
	SubCategoryEXPWP            InvoiceSubCategory = "EXPWP"
	SubCategoryEXPWOP           InvoiceSubCategory = "EXPWOP"
	SubCategoryB2CL             InvoiceSubCategory = "B2C (Large)"
	SubCategoryB2CS             InvoiceSubCategory = "B2C (Others)"
	SubCategoryNilRated         InvoiceSubCategory = "Nil-Rated"
	SubCategoryExempted         InvoiceSubCategory = "Exempted"
	SubCategoryNonGST           InvoiceSubCategory = "Non-GST"
	SubCategoryCDNR             InvoiceSubCategory = "CDNR"
	SubCategoryCDNUR            InvoiceSubCategory = "CDNUR"
)

// CategorySubCategories lists every category with its sub-categories, in the
// order the return presents them.
var CategorySubCategories = []struct {
	Category      InvoiceCategory
	SubCategories []InvoiceSubCategory
}{
	{CategoryB2B, []InvoiceSubCategory{
		SubCategoryB2BRegular, SubCategoryB2BReverseCharge,
		SubCategorySEZWP, SubCategorySEZWOP, SubCategoryDE,
	}},
	{CategoryEXP, []InvoiceSubCategory{SubCategoryEXPWP, SubCategoryEXPWOP}},
	{CategoryB2CL, []InvoiceSubCategory{SubCategoryB2CL}},
	{CategoryB2CS, []InvoiceSubCategory{SubCategoryB2CS}},
	{CategoryNilExempt, []InvoiceSubCategory{SubCategoryNilRated, SubCategoryExempted, SubCategoryNonGST}},
	{CategoryCDNR, []InvoiceSubCategory{SubCategoryCDNR}},
	{CategoryCDNUR, []InvoiceSubCategory{SubCategoryCDNUR}},
}

// SubCategoriesOf returns the sub-categories of c, or nil if c is not a known category.
func SubCategoriesOf(c InvoiceCategory) []InvoiceSubCategory {
	for _, entry := range CategorySubCategories {
		if entry.Category == c {
			return entry.SubCategories
		}
	}
	return nil
}

// AllSubCategories returns all 14 sub-categories in return order.
func AllSubCategories() []InvoiceSubCategory {
	out := make([]InvoiceSubCategory, 0, 14)
	for _, entry := range CategorySubCategories {
		out = append(out, entry.SubCategories...)
	}
	return out
}

// CategoryOf returns the category that owns sub.
func CategoryOf(sub InvoiceSubCategory) (InvoiceCategory, bool) {
	for _, entry := range CategorySubCategories {
		for _, s := range entry.SubCategories {
			if s == sub {
				return entry.Category, true
			}
		}
	}
	return "", false
}

// UserRole defines what a caller may report on.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAnalyst UserRole = "analyst"
)

// ValidRoles lists the roles a token may carry.
var ValidRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleAnalyst: true,
}
