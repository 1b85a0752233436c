// Package normalize maps raw manufacturer spec-sheet values onto the canonical
// shaft schema.
package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/shaftdb/internal/domain/model"
)

var flexAliases = map[string]model.Flex{
	"l":       model.FlexLadies,
	"ladies":  model.FlexLadies,
	"a":       model.FlexSenior,
	"sr":      model.FlexSenior,
	"senior":  model.FlexSenior,
	"r":       model.FlexRegular,
	"regular": model.FlexRegular,
	"s":       model.FlexStiff,
	"stiff":   model.FlexStiff,
	"x":       model.FlexXStiff,
	"xs":      model.FlexXStiff,
	"x-stiff": model.FlexXStiff,
	"xstiff":  model.FlexXStiff,
	"tx":      model.FlexTX,
	"xxx":     model.FlexTX,
}

// Weight-class prefixed codes such as "6.0S" or "60X".
var flexSuffix = regexp.MustCompile(`[0-9.]+(s|r|x|tx|xs|a|l)$`)

var profileAliases = map[string]model.Profile{
	"low":      model.ProfileLow,
	"low-mid":  model.ProfileLowMid,
	"low/mid":  model.ProfileLowMid,
	"mid":      model.ProfileMid,
	"mid-high": model.ProfileMidHigh,
	"mid/high": model.ProfileMidHigh,
	"high":     model.ProfileHigh,
}

// Bend-point vocabulary some manufacturers use instead of low/mid/high.
var kickpointAliases = map[string]model.Profile{
	"front":     model.ProfileLow,
	"front-mid": model.ProfileLowMid,
	"rear":      model.ProfileHigh,
}

var tipAliases = map[string]model.TipStiffness{
	"soft":       model.TipSoft,
	"medium":     model.TipMedium,
	"med":        model.TipMedium,
	"firm":       model.TipFirm,
	"very firm":  model.TipVeryFirm,
	"extra firm": model.TipVeryFirm,
}

// Flex resolves a manufacturer flex code. Case and spaces are ignored. Codes
// carrying a weight-class prefix ("6.0S", "60X") resolve by their letter
// suffix. Anything else fails with ErrUnparseableFlex.
func Flex(raw string) (model.Flex, error) {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "")
	if f, ok := flexAliases[cleaned]; ok {
		return f, nil
	}
	if m := flexSuffix.FindStringSubmatch(cleaned); m != nil {
		if f, ok := flexAliases[m[1]]; ok {
			return f, nil
		}
		return model.FlexStiff, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnparseableFlex, raw)
}

// Launch maps a launch description to a profile. Blank or unknown input is absent.
func Launch(raw string) (model.Profile, bool) { return lookup(profileAliases, raw) }

// Spin maps a spin description to a profile. Blank or unknown input is absent.
func Spin(raw string) (model.Profile, bool) { return lookup(profileAliases, raw) }

// Kickpoint maps a kickpoint description to a profile, also accepting
// front, front-mid and rear.
func Kickpoint(raw string) (model.Profile, bool) {
	if p, ok := lookup(profileAliases, raw); ok {
		return p, true
	}
	return lookup(kickpointAliases, raw)
}

// TipStiffness maps a tip stiffness description. Blank or unknown input is absent.
func TipStiffness(raw string) (model.TipStiffness, bool) { return lookup(tipAliases, raw) }

// Float parses a numeric cell. Empty, non-numeric and non-finite input
// (including "nan") yields (0, false).
func Float(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func lookup[V any](table map[string]V, raw string) (V, bool) {
	v, ok := table[strings.ToLower(strings.TrimSpace(raw))]
	return v, ok
}
