// Package forms describes the field layouts consumed by the admin client's
// generic edit dialog. A schema is an ordered list of tagged field
// descriptors; the client renders one input per descriptor and hands back a
// full record on save.
package forms

// FieldKind selects the input rendered for a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
)

// Field describes one input of an edit form.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Options []string  `json:"options,omitempty"`
	Value   string    `json:"value,omitempty"`
}

// Schema is the ordered field list of one panel's edit form.
type Schema []Field

// Text returns a plain text field.
func Text(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindText}
}

// Textarea returns a multi-line text field.
func Textarea(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindTextarea}
}

// Select returns a fixed-option select field.
func Select(name, label string, options []string) Field {
	return Field{Name: name, Label: label, Kind: KindSelect, Options: options}
}

// WithValues returns a copy of the schema seeded with current record values,
// keyed by field name. Fields with no entry keep an empty value.
func (s Schema) WithValues(values map[string]string) Schema {
	out := make(Schema, len(s))
	copy(out, s)
	for i := range out {
		out[i].Value = values[out[i].Name]
	}
	return out
}
