package composer

import "slices"

// PhraseBank holds the candidate intros and closings per tone and the
// holiday additions per holiday. The composer only reads from it.
type PhraseBank struct {
	Intros    map[Tone][]string
	Closings  map[Tone][]string
	Additions map[Holiday][]string
}

var defaultIntros = map[Tone][]string{
	ToneFun: {
		"🌴 Gone fishin' (metaphorically)",
		"🏖️ Currently living my best life",
		"✈️ Embarking on a grand adventure",
		"🧘‍♀️ Finding my zen",
		"🌞 Soaking up vitamin D",
		"📚 Taking a break to read that book I've been putting off",
		"🎮 Finally beating that video game boss",
		"🍕 On a quest for the perfect pizza",
	},
	ToneProfessional: {
		"Thank you for your email",
		"I appreciate your message",
		"Thank you for getting in touch",
		"Hello, and thank you for your email",
	},
	ToneMinimal: {
		"Out of office",
		"Away from inbox",
		"Auto: Out of office",
		"Away notice",
	},
	ToneAdventurous: {
		"🌎 Currently exploring uncharted territories",
		"🏃‍♂️ Racing against time zones",
		"🗺️ Lost in the wilderness (aka vacation)",
		"🚀 Temporarily in orbit",
		"🏔️ Conquering new heights",
	},
}

var defaultClosings = map[Tone][]string{
	ToneFun: {
		"Don't worry, the internet will still be here when I return!",
		"If this is urgent, try meditating and see if it's still urgent tomorrow.",
		"In case of emergency, try turning it off and on again.",
		"Feel free to send me an email, but know that I'm probably napping.",
		"My inbox is currently full of virtual dust bunnies.",
	},
	ToneProfessional: {
		"I appreciate your understanding during my absence.",
		"Thank you for your patience while I'm away.",
		"I look forward to connecting upon my return.",
		"I will address your message promptly upon my return.",
	},
	ToneMinimal: {
		"Thanks.",
		"Best regards.",
		"Regards.",
		"Best.",
	},
	ToneAdventurous: {
		"Will return once this adventure chapter is complete!",
		"Signal might be weak where I'm headed, but my spirit is strong!",
		"The journey continues, but I'll be back soon!",
		"Currently off the grid, seeking the next big story!",
	},
}

var defaultAdditions = map[Holiday][]string{
	HolidayNone: {""},
	HolidayChristmas: {
		"🎄 Ho ho ho from under the mistletoe",
		"🎅 Helping Santa with last-minute deliveries",
		"⛄ Building snowmen instead of spreadsheets",
		"🎁 Wrapping presents with questionable skill",
	},
	HolidayNewYear: {
		"🎆 Ringing in the new year",
		"🥂 Toasting to fresh starts",
		"🎉 Still recovering from the countdown",
		"📅 Working on my resolutions",
	},
}

// DefaultPhraseBank returns a copy of the built-in phrase bank. Changes to
// it never reach other composers.
func DefaultPhraseBank() PhraseBank {
	return PhraseBank{
		Intros:    cloneLists(defaultIntros),
		Closings:  cloneLists(defaultClosings),
		Additions: cloneLists(defaultAdditions),
	}
}

func cloneLists[K comparable](src map[K][]string) map[K][]string {
	dst := make(map[K][]string, len(src))
	for key, list := range src {
		dst[key] = slices.Clone(list)
	}
	return dst
}

// IntrosFor returns a copy of the intro list for tone.
func (b PhraseBank) IntrosFor(tone Tone) []string {
	return slices.Clone(b.Intros[tone])
}

// ClosingsFor returns a copy of the closing list for tone.
func (b PhraseBank) ClosingsFor(tone Tone) []string {
	return slices.Clone(b.Closings[tone])
}

// AdditionsFor returns a copy of the addition list for holiday.
func (b PhraseBank) AdditionsFor(holiday Holiday) []string {
	return slices.Clone(b.Additions[holiday])
}
