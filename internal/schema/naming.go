package schema

import "strings"

// Abbreviations common in census and parcel attribute tables.
var abbreviations = map[string]string{
	// Identifiers
	"id": "id", "uid": "id", "gid": "id", "fid": "id", "objectid": "id",
	"no": "number", "num": "number", "nbr": "number", "cd": "code",
	"geoid": "geo id", "fips": "fips", "zip": "zipcode", "zcta": "zipcode",
	"post": "zipcode", "pin": "parcel number", "apn": "parcel number",

	// Places
	"st": "state", "cty": "county", "cnty": "county",
	"co": "county", "trct": "tract", "tr": "tract", "blk": "block",
	"bg": "block group", "blkgrp": "block group", "twp": "township",
	"dist": "district", "prov": "province", "muni": "municipality",
	"loc": "location", "addr": "address",

	// Descriptors
	"nm": "name", "nam": "name", "desc": "description", "typ": "type",
	"cat": "category", "yr": "year", "dt": "date", "amt": "amount",
	"cnt": "count", "pop": "population",
}

// NormalizeName lowercases a column name, splits it on separators and
// expands known abbreviations, so "Tract_CD" and "tract code" compare equal.
func NormalizeName(colName string) string {
	fields := strings.FieldsFunc(strings.ToLower(colName), func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if full, ok := abbreviations[f]; ok {
			words = append(words, full)
		} else {
			words = append(words, f)
		}
	}
	return strings.Join(words, " ")
}

// SimilarNames reports whether two column names normalize to the same words.
func SimilarNames(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	return na != "" && na == nb
}
