package composer

import "strings"

// FieldSet holds the free-text values a user typed into the form. Every
// field is optional; blank values are replaced by fallbacks when rendering.
type FieldSet struct {
	Name       string `yaml:"name,omitempty"`
	ReturnDate string `yaml:"return_date,omitempty"`
	Reason     string `yaml:"reason,omitempty"`
	Contact    string `yaml:"contact,omitempty"`

	Activity string `yaml:"activity,omitempty"`
	Location string `yaml:"location,omitempty"`
	Excuse   string `yaml:"excuse,omitempty"`
	Hobby    string `yaml:"hobby,omitempty"`
	Food     string `yaml:"food,omitempty"`
}

// Field names a single entry of a FieldSet.
type Field string

const (
	FieldName       Field = "name"
	FieldReturnDate Field = "returnDate"
	FieldReason     Field = "reason"
	FieldContact    Field = "contact"
	FieldActivity   Field = "activity"
	FieldLocation   Field = "location"
	FieldExcuse     Field = "excuse"
	FieldHobby      Field = "hobby"
	FieldFood       Field = "food"
)

// Fallback tokens substituted for blank fields.
const (
	FallbackSubject          = "I am"
	FallbackReturnDate       = "[return date]"
	FallbackEmergencyContact = "[emergency contact]"
	FallbackContactPerson    = "[contact person]"
	FallbackActivity         = "[activity]"
	FallbackLocation         = "[location]"
	FallbackExcuse           = "[excuse]"
	FallbackHobby            = "[hobby]"
	FallbackFood             = "[food]"
	FallbackContact          = "[contact]"
)

var familyFields = map[Family][]Field{
	FamilyClassic: {FieldName, FieldReturnDate, FieldReason, FieldContact},
	FamilyMadLib:  {FieldActivity, FieldLocation, FieldExcuse, FieldHobby, FieldFood, FieldContact},
}

// FieldsFor lists the fields a family reads, in form order.
func FieldsFor(family Family) []Field {
	return append([]Field(nil), familyFields[family]...)
}

// Get returns the trimmed value of f.
func (s FieldSet) Get(f Field) string {
	var value string
	switch f {
	case FieldName:
		value = s.Name
	case FieldReturnDate:
		value = s.ReturnDate
	case FieldReason:
		value = s.Reason
	case FieldContact:
		value = s.Contact
	case FieldActivity:
		value = s.Activity
	case FieldLocation:
		value = s.Location
	case FieldExcuse:
		value = s.Excuse
	case FieldHobby:
		value = s.Hobby
	case FieldFood:
		value = s.Food
	}
	return strings.TrimSpace(value)
}

// With returns a copy of s with f set to value.
func (s FieldSet) With(f Field, value string) FieldSet {
	switch f {
	case FieldName:
		s.Name = value
	case FieldReturnDate:
		s.ReturnDate = value
	case FieldReason:
		s.Reason = value
	case FieldContact:
		s.Contact = value
	case FieldActivity:
		s.Activity = value
	case FieldLocation:
		s.Location = value
	case FieldExcuse:
		s.Excuse = value
	case FieldHobby:
		s.Hobby = value
	case FieldFood:
		s.Food = value
	}
	return s
}

// Label is the prompt shown next to the field input.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Your name"
	case FieldReturnDate:
		return "Return date"
	case FieldReason:
		return "Reason for absence"
	case FieldContact:
		return "Emergency contact"
	case FieldActivity:
		return "Activity"
	case FieldLocation:
		return "Location"
	case FieldExcuse:
		return "Excuse"
	case FieldHobby:
		return "Hobby"
	case FieldFood:
		return "Food"
	}
	return string(f)
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldName:
		return "optional"
	case FieldReturnDate:
		return "e.g. 2024-07-01"
	case FieldReason:
		return "optional, e.g. 'on vacation', 'at a conference'"
	case FieldContact:
		return "optional"
	case FieldActivity:
		return "e.g. surfing"
	case FieldLocation:
		return "e.g. Lisbon"
	case FieldExcuse:
		return "e.g. my cat booked the tickets"
	case FieldHobby:
		return "e.g. knitting"
	case FieldFood:
		return "e.g. pastel de nata"
	}
	return ""
}

// madLibToken is the bracketed token a field replaces inside mad-lib bodies.
func (f Field) madLibToken() string {
	switch f {
	case FieldActivity:
		return FallbackActivity
	case FieldLocation:
		return FallbackLocation
	case FieldExcuse:
		return FallbackExcuse
	case FieldHobby:
		return FallbackHobby
	case FieldFood:
		return FallbackFood
	case FieldContact:
		return FallbackContact
	}
	return ""
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
