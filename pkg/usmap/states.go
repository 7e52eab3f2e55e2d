// Package usmap normalizes US state-level tabular data and renders it
// as a choropleth map through a pluggable renderer.
package usmap

import "sort"

// States maps the 50 state postal abbreviations plus DC to full names.
var States = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// ValidState reports whether code (already uppercased) is a known state.
func ValidState(code string) bool {
	_, ok := States[code]
	return ok
}

// StateName returns the full name for a known code.
func StateName(code string) (string, bool) {
	n, ok := States[code]
	return n, ok
}

// StateCodes returns all valid codes in ascending order.
func StateCodes() []string {
	codes := make([]string, 0, len(States))
	for c := range States {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
