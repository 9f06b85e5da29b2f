package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned for a code outside A-D.
var ErrUnknownFamily = errors.New("unknown strategy family")

// CreateFamily returns the family for a code. Codes are case-insensitive.
func CreateFamily(code string) (Family, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "A":
		return NewLumpSumFocus(), nil
	case "B":
		return NewDCLumpSplit(), nil
	case "C":
		return NewIDeCoLumpSplit(), nil
	case "D":
		return NewPensionFocus(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, code)
	}
}

// Families returns every family in evaluation order.
func Families() []Family {
	return []Family{NewLumpSumFocus(), NewDCLumpSplit(), NewIDeCoLumpSplit(), NewPensionFocus()}
}
