package composer

import (
	"fmt"
	"strings"

	oooerrors "github.com/alexisbeaulieu97/ooo/pkg/errors"
)

// Tone selects which intro and closing lists a message draws from.
type Tone string

const (
	ToneFun          Tone = "fun"
	ToneProfessional Tone = "professional"
	ToneMinimal      Tone = "minimal"
	ToneAdventurous  Tone = "adventurous"
)

// Holiday layers an optional festive fragment into the intro.
type Holiday string

const (
	HolidayNone      Holiday = "none"
	HolidayChristmas Holiday = "christmas"
	HolidayNewYear   Holiday = "newyear"
)

// Family selects between intro/closing composition and whole mad-lib bodies.
type Family string

const (
	FamilyClassic Family = "classic"
	FamilyMadLib  Family = "madlib"
)

const (
	DefaultTone    = ToneFun
	DefaultHoliday = HolidayNone
	DefaultFamily  = FamilyClassic
)

var (
	tones     = []Tone{ToneFun, ToneProfessional, ToneMinimal, ToneAdventurous}
	holidays  = []Holiday{HolidayNone, HolidayChristmas, HolidayNewYear}
	families  = []Family{FamilyClassic, FamilyMadLib}
	toneLabel = map[Tone]string{
		ToneFun:          "😊 Fun",
		ToneProfessional: "👔 Professional",
		ToneMinimal:      "📝 Minimal",
		ToneAdventurous:  "🌎 Adventurous",
	}
	holidayLabel = map[Holiday]string{
		HolidayNone:      "No holiday",
		HolidayChristmas: "🎄 Christmas",
		HolidayNewYear:   "🎆 New Year",
	}
	familyLabel = map[Family]string{
		FamilyClassic: "Classic",
		FamilyMadLib:  "Mad-lib",
	}
)

// Tones returns every supported tone in display order.
func Tones() []Tone { return append([]Tone(nil), tones...) }

// Holidays returns every supported holiday in display order.
func Holidays() []Holiday { return append([]Holiday(nil), holidays...) }

// Families returns every supported template family in display order.
func Families() []Family { return append([]Family(nil), families...) }

// Known reports whether t is a supported tone.
func (t Tone) Known() bool {
	_, ok := toneLabel[t]
	return ok
}

// Label is the human readable name shown on selectors.
func (t Tone) Label() string {
	if label, ok := toneLabel[t]; ok {
		return label
	}
	return string(t)
}

func (t Tone) String() string { return string(t) }

// Known reports whether h is a supported holiday.
func (h Holiday) Known() bool {
	_, ok := holidayLabel[h]
	return ok
}

// Label is the human readable name shown on selectors.
func (h Holiday) Label() string {
	if label, ok := holidayLabel[h]; ok {
		return label
	}
	return string(h)
}

func (h Holiday) String() string { return string(h) }

// Known reports whether f is a supported template family.
func (f Family) Known() bool {
	_, ok := familyLabel[f]
	return ok
}

// Label is the human readable name shown on selectors.
func (f Family) Label() string {
	if label, ok := familyLabel[f]; ok {
		return label
	}
	return string(f)
}

func (f Family) String() string { return string(f) }

// ParseTone converts user input into a Tone. Blank input yields DefaultTone.
func ParseTone(value string) (Tone, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return DefaultTone, nil
	}
	tone := Tone(normalized)
	if !tone.Known() {
		return "", oooerrors.NewValidationError("tone", fmt.Sprintf("unknown tone %q (want one of %s)", value, joinNames(tones)), nil)
	}
	return tone, nil
}

// ParseHoliday converts user input into a Holiday. Blank input yields DefaultHoliday.
func ParseHoliday(value string) (Holiday, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "":
		return DefaultHoliday, nil
	case "new-year", "new_year", "newyears":
		normalized = string(HolidayNewYear)
	}
	holiday := Holiday(normalized)
	if !holiday.Known() {
		return "", oooerrors.NewValidationError("holiday", fmt.Sprintf("unknown holiday %q (want one of %s)", value, joinNames(holidays)), nil)
	}
	return holiday, nil
}

// ParseFamily converts user input into a Family. Blank input yields DefaultFamily.
func ParseFamily(value string) (Family, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "":
		return DefaultFamily, nil
	case "mad-lib", "mad_lib", "madlibs":
		normalized = string(FamilyMadLib)
	}
	family := Family(normalized)
	if !family.Known() {
		return "", oooerrors.NewValidationError("family", fmt.Sprintf("unknown family %q (want one of %s)", value, joinNames(families)), nil)
	}
	return family, nil
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
