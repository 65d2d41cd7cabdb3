// Package composer turns a set of form fields plus a tone and holiday into a
// randomized out-of-office message.
package composer

import (
	"fmt"

	oooerrors "github.com/alexisbeaulieu97/ooo/pkg/errors"
)

// Layout identifies the paragraph structure of a rendered message.
type Layout string

const (
	LayoutFull    Layout = "full"
	LayoutMinimal Layout = "minimal"
	LayoutMadLib  Layout = "madlib"
)

// Request bundles everything needed to render one message. Blank
// categories fall back to their defaults; unknown ones are rejected.
type Request struct {
	Fields  FieldSet
	Tone    Tone    `validate:"tone"`
	Holiday Holiday `validate:"holiday"`
	Family  Family  `validate:"family"`
}

// Message is an immutable snapshot of one generated message and the phrases
// that went into it.
type Message struct {
	Text     string
	Family   Family
	Tone     Tone
	Holiday  Holiday
	Layout   Layout
	Intro    string
	Addition string
	Closing  string
	Body     string
}

func (m Message) String() string { return m.Text }

// Empty reports whether no message has been generated.
func (m Message) Empty() bool { return m.Text == "" }

// Composer renders messages from a phrase bank and a mad-lib book. It holds
// no mutable state of its own.
type Composer struct {
	bank    PhraseBank
	madLibs MadLibBook
	rand    Rand
}

// Option customises a Composer.
type Option func(*Composer)

// WithRand sets the randomness source used for every pick.
func WithRand(r Rand) Option {
	return func(c *Composer) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithPhraseBank replaces the built-in intro, closing and holiday lists.
func WithPhraseBank(bank PhraseBank) Option {
	return func(c *Composer) {
		c.bank = bank
	}
}

// WithMadLibBook replaces the built-in mad-lib bodies.
func WithMadLibBook(book MadLibBook) Option {
	return func(c *Composer) {
		c.madLibs = book
	}
}

// New creates a Composer backed by the built-in phrases and the global
// random generator unless overridden by opts.
func New(opts ...Option) *Composer {
	c := &Composer{
		bank:    DefaultPhraseBank(),
		madLibs: DefaultMadLibBook(),
		rand:    globalRand{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var std = New()

// Compose renders a classic-family message with the default Composer.
func Compose(fields FieldSet, tone Tone, holiday Holiday) (string, error) {
	return std.Compose(fields, tone, holiday)
}

// Compose renders a classic-family message and returns its text.
func (c *Composer) Compose(fields FieldSet, tone Tone, holiday Holiday) (string, error) {
	msg, err := c.Generate(Request{Fields: fields, Tone: tone, Holiday: holiday, Family: FamilyClassic})
	if err != nil {
		return "", err
	}
	return msg.Text, nil
}

// Generate renders req in its template family.
func (c *Composer) Generate(req Request) (Message, error) {
	req = req.withDefaults()
	if err := validateRequest(req); err != nil {
		return Message{}, err
	}

	if req.Family == FamilyMadLib {
		return c.madLib(req)
	}
	return c.classic(req)
}

func (r Request) withDefaults() Request {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.Holiday == "" {
		r.Holiday = DefaultHoliday
	}
	if r.Family == "" {
		r.Family = DefaultFamily
	}
	return r
}

func (c *Composer) classic(req Request) (Message, error) {
	intro, err := PickRandom(c.rand, c.bank.Intros[req.Tone])
	if err != nil {
		return Message{}, oooerrors.NewCompositionError("intro", err)
	}
	closing, err := PickRandom(c.rand, c.bank.Closings[req.Tone])
	if err != nil {
		return Message{}, oooerrors.NewCompositionError("closing", err)
	}

	var addition string
	if req.Holiday != HolidayNone {
		addition, err = PickRandom(c.rand, c.bank.Additions[req.Holiday])
		if err != nil {
			return Message{}, oooerrors.NewCompositionError("holiday", err)
		}
	}

	headline := intro
	if addition != "" {
		headline = intro + " - " + addition
	}

	msg := Message{
		Family:   FamilyClassic,
		Tone:     req.Tone,
		Holiday:  req.Holiday,
		Intro:    intro,
		Addition: addition,
		Closing:  closing,
	}

	if req.Tone == ToneMinimal {
		msg.Layout = LayoutMinimal
		msg.Text = renderMinimal(headline, closing, req.Fields)
	} else {
		msg.Layout = LayoutFull
		msg.Text = renderFull(headline, closing, req.Fields)
	}
	return msg, nil
}

func (c *Composer) madLib(req Request) (Message, error) {
	body, err := PickRandom(c.rand, c.madLibs[req.Tone][req.Holiday])
	if err != nil {
		return Message{}, oooerrors.NewCompositionError("madlib", err)
	}

	return Message{
		Text:    fillMadLib(body, req.Fields),
		Family:  FamilyMadLib,
		Tone:    req.Tone,
		Holiday: req.Holiday,
		Layout:  LayoutMadLib,
		Body:    body,
	}, nil
}

func renderFull(headline, closing string, fields FieldSet) string {
	return fmt.Sprintf("%s!\n\n%s currently out of office%s and will return on %s.\n\n%s\n\nFor urgent matters, please contact %s.",
		headline,
		subject(fields),
		reasonSuffix(fields),
		valueOr(fields.Get(FieldReturnDate), FallbackReturnDate),
		closing,
		valueOr(fields.Get(FieldContact), FallbackEmergencyContact),
	)
}

func renderMinimal(headline, closing string, fields FieldSet) string {
	return fmt.Sprintf("%s.\n\n%s out of office%s until %s.\n\nUrgent matters: %s.\n\n%s",
		headline,
		subject(fields),
		reasonSuffix(fields),
		valueOr(fields.Get(FieldReturnDate), FallbackReturnDate),
		valueOr(fields.Get(FieldContact), FallbackContactPerson),
		closing,
	)
}

func subject(fields FieldSet) string {
	if name := fields.Get(FieldName); name != "" {
		return name + " is"
	}
	return FallbackSubject
}

func reasonSuffix(fields FieldSet) string {
	if reason := fields.Get(FieldReason); reason != "" {
		return " " + reason
	}
	return ""
}
