package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubCategory = errors.New("unknown sub-category")
	ErrMalformedInvoice   = errors.New("malformed invoice row")
	ErrInvalidFilters     = errors.New("invalid report filters")
	ErrUnsupportedInput   = errors.New("unsupported input format")
	ErrUnknownSource      = errors.New("unknown invoice source provider")
)
