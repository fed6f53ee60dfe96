package helpers

import "database/sql"

// GetNullString converts a string value to sql.NullString.
// An empty string becomes NULL.
func GetNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullFloat64 converts a float pointer to sql.NullFloat64.
// A nil pointer becomes NULL; used for plan-course credit overrides.
func GetNullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// NullStringValue unwraps a NullString to its string value, empty when NULL.
func NullStringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// NullFloat64Ptr unwraps a NullFloat64 to a pointer, nil when NULL.
func NullFloat64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}
