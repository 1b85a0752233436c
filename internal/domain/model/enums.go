// Package model contains the validated shaft record and its closed value sets.
package model

import "strings"

// ClubType is the club a shaft is built for.
type ClubType string

// Supported club types.
const (
	ClubWoods   ClubType = "woods"
	ClubFairway ClubType = "fairway"
	ClubHybrid  ClubType = "hybrid"
	ClubIron    ClubType = "iron"
	ClubWedge   ClubType = "wedge"
	ClubPutter  ClubType = "putter"
)

var clubTypes = []ClubType{ClubWoods, ClubFairway, ClubHybrid, ClubIron, ClubWedge, ClubPutter}

// ClubTypes returns every club type in declaration order.
func ClubTypes() []ClubType {
	return append([]ClubType(nil), clubTypes...)
}

// Valid reports whether c is one of the canonical club types.
func (c ClubType) Valid() bool {
	for _, ct := range clubTypes {
		if c == ct {
			return true
		}
	}
	return false
}

// ParseClubType resolves a free-text club type label. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseClubType(raw string) (ClubType, bool) {
	ct := ClubType(strings.ToLower(strings.TrimSpace(raw)))
	if !ct.Valid() {
		return "", false
	}
	return ct, true
}

// Flex is a shaft stiffness rating.
type Flex string

// Flex ratings from most flexible to stiffest.
const (
	FlexLadies  Flex = "Ladies"
	FlexSenior  Flex = "Senior"
	FlexRegular Flex = "Regular"
	FlexStiff   Flex = "Stiff"
	FlexXStiff  Flex = "X-Stiff"
	FlexTX      Flex = "TX"
)

// flexes is ordered; the index of a flex is its rank.
var flexes = []Flex{FlexLadies, FlexSenior, FlexRegular, FlexStiff, FlexXStiff, FlexTX}

// Flexes returns every flex rating ordered from most flexible to stiffest.
func Flexes() []Flex {
	return append([]Flex(nil), flexes...)
}

// Order returns the rank of f (Ladies=0 ... TX=5), or -1 when f is not canonical.
func (f Flex) Order() int {
	for i, fl := range flexes {
		if f == fl {
			return i
		}
	}
	return -1
}

// Valid reports whether f is one of the canonical flex ratings.
func (f Flex) Valid() bool { return f.Order() >= 0 }

// Profile is a five-step qualitative scale used for launch, spin and kickpoint.
type Profile string

// Profile values from lowest to highest.
const (
	ProfileLow     Profile = "Low"
	ProfileLowMid  Profile = "Low-Mid"
	ProfileMid     Profile = "Mid"
	ProfileMidHigh Profile = "Mid-High"
	ProfileHigh    Profile = "High"
)

var profiles = []Profile{ProfileLow, ProfileLowMid, ProfileMid, ProfileMidHigh, ProfileHigh}

// Profiles returns every profile value from lowest to highest.
func Profiles() []Profile {
	return append([]Profile(nil), profiles...)
}

// Valid reports whether p is one of the canonical profile values.
func (p Profile) Valid() bool {
	for _, v := range profiles {
		if p == v {
			return true
		}
	}
	return false
}

// TipStiffness describes how firm the tip section of a shaft is.
type TipStiffness string

// Tip stiffness values from softest to firmest.
const (
	TipSoft     TipStiffness = "Soft"
	TipMedium   TipStiffness = "Medium"
	TipFirm     TipStiffness = "Firm"
	TipVeryFirm TipStiffness = "Very Firm"
)

var tipStiffnesses = []TipStiffness{TipSoft, TipMedium, TipFirm, TipVeryFirm}

// Valid reports whether t is one of the canonical tip stiffness values.
func (t TipStiffness) Valid() bool {
	for _, v := range tipStiffnesses {
		if t == v {
			return true
		}
	}
	return false
}
