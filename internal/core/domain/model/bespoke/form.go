package bespoke

import "strings"

// RequiredField is one of the six fields that count towards form completion.
type RequiredField int

const (
	FieldName RequiredField = iota + 1
	FieldEmail
	FieldArrangementType
	FieldColourTheme
	FieldWreathBase
	FieldSize
)

// RequiredFields lists the fields in the order the form presents them.
func RequiredFields() []RequiredField {
	return []RequiredField{FieldName, FieldEmail, FieldArrangementType, FieldColourTheme, FieldWreathBase, FieldSize}
}

func (f RequiredField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldArrangementType:
		return "arrangementType"
	case FieldColourTheme:
		return "colourTheme"
	case FieldWreathBase:
		return "wreathBase"
	case FieldSize:
		return "size"
	default:
		return "unknown"
	}
}

// Form holds the current values of the bespoke order form. Phone and Notes are optional.
type Form struct {
	Name            string
	Email           string
	Phone           string
	ArrangementType string
	ColourTheme     string
	WreathBase      string
	Size            string
	Ribbon          bool
	Notes           string
}

// Value returns the raw value of a required field.
func (f Form) Value(field RequiredField) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldArrangementType:
		return f.ArrangementType
	case FieldColourTheme:
		return f.ColourTheme
	case FieldWreathBase:
		return f.WreathBase
	case FieldSize:
		return f.Size
	default:
		return ""
	}
}

// MissingFields returns the required fields that are blank after trimming.
func (f Form) MissingFields() []RequiredField {
	var missing []RequiredField
	for _, field := range RequiredFields() {
		if strings.TrimSpace(f.Value(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// CompletionRatio is the share of required fields that are filled in, in [0, 1].
// Optional fields never change it.
func CompletionRatio(f Form) float64 {
	required := RequiredFields()
	filled := len(required) - len(f.MissingFields())
	return float64(filled) / float64(len(required))
}
