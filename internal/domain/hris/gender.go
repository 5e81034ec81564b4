package hris

import "fmt"

// Gender is a two-value enumeration; the zero value means unspecified and
// is stored as NULL.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale:
		return true
	}
	return false
}

func ParseGender(value string) (Gender, error) {
	g := Gender(value)
	if !g.Valid() {
		return GenderUnspecified, fmt.Errorf("invalid gender %q", value)
	}
	return g, nil
}
