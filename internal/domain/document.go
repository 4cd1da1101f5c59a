package domain

import (
	"fmt"
	"time"

	"resume-builder/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// MaxSections is the largest number of sections a document may select.
const MaxSections = 7

// Document is one user's résumé: the ordered section selection plus the
// value held for each kind.
type Document struct {
	ID               uuid.UUID           `json:"id"`
	OwnerID          uuid.UUID           `json:"ownerId"`
	SelectedSections []model.SectionKind `json:"selectedSections"`
	SectionValues    model.SectionValues `json:"sectionValues"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// DocumentInput is the body of create and replace requests.
type DocumentInput struct {
	SelectedSections []model.SectionKind `json:"selectedSections"`
	SectionValues    model.SectionValues `json:"sectionValues"`
}

func kindChoices() []interface{} {
	all := model.AllKinds()
	out := make([]interface{}, len(all))
	for i, k := range all {
		out[i] = k
	}
	return out
}

// ValidateSelection enforces the selection invariants: 1..MaxSections known
// kinds, no repeats, Header present.
func ValidateSelection(kinds []model.SectionKind) error {
	err := validation.Validate(kinds,
		validation.Required.Error("at least one section must be selected"),
		validation.Length(1, MaxSections).Error(fmt.Sprintf("at most %d sections may be selected", MaxSections)),
		validation.Each(validation.Required, validation.In(kindChoices()...).Error("unknown section kind")),
	)
	if err != nil {
		return &ValidationError{Message: "selectedSections: " + err.Error()}
	}
	seen := make(map[model.SectionKind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			return Invalid("selectedSections: %q selected more than once", k)
		}
		seen[k] = true
	}
	if !seen[model.KindHeader] {
		return Invalid("selectedSections: %q is mandatory", model.KindHeader)
	}
	return nil
}

// SelectSections builds the initial document for a selection, with the
// empty default value for every selected kind in the given order.
func SelectSections(kinds []model.SectionKind) (*Document, error) {
	if err := ValidateSelection(kinds); err != nil {
		return nil, err
	}
	doc := &Document{
		SelectedSections: append([]model.SectionKind(nil), kinds...),
		SectionValues:    make(model.SectionValues, len(kinds)),
	}
	for _, k := range kinds {
		doc.SectionValues[k] = model.DefaultValue(k)
	}
	return doc, nil
}

// Selected reports whether kind is part of the document's selection.
func (d *Document) Selected(kind model.SectionKind) bool {
	for _, k := range d.SelectedSections {
		if k == kind {
			return true
		}
	}
	return false
}

// SetSectionValue replaces the whole value for kind. The value's own fields
// are not validated; partially filled records are expected mid-edit.
func (d *Document) SetSectionValue(kind model.SectionKind, value model.SectionValue) error {
	if !d.Selected(kind) {
		return Invalid("section %q is not selected", kind)
	}
	if value == nil {
		value = model.DefaultValue(kind)
	}
	if value.Kind() != kind {
		return Invalid("value for %q has shape of %q", kind, value.Kind())
	}
	if d.SectionValues == nil {
		d.SectionValues = model.SectionValues{}
	}
	d.SectionValues[kind] = value
	return nil
}

// Section returns the stored value for kind, falling back to the kind's
// empty default when nothing is stored.
func (d *Document) Section(kind model.SectionKind) model.SectionValue {
	if v, ok := d.SectionValues[kind]; ok && v != nil {
		return v
	}
	return model.DefaultValue(kind)
}

// Apply replaces the selection and values from an input, keeping identity
// and timestamps. Selected kinds without a supplied value get defaults.
func (d *Document) Apply(in DocumentInput) error {
	if err := ValidateSelection(in.SelectedSections); err != nil {
		return err
	}
	values := make(model.SectionValues, len(in.SectionValues)+len(in.SelectedSections))
	for k, v := range in.SectionValues {
		if v == nil {
			v = model.DefaultValue(k)
		}
		values[k] = v
	}
	for _, k := range in.SelectedSections {
		if _, ok := values[k]; !ok {
			values[k] = model.DefaultValue(k)
		}
	}
	d.SelectedSections = append([]model.SectionKind(nil), in.SelectedSections...)
	d.SectionValues = values
	return nil
}

// Clone returns a copy safe to mutate independently of d.
func (d *Document) Clone() *Document {
	c := *d
	c.SelectedSections = append([]model.SectionKind(nil), d.SelectedSections...)
	c.SectionValues = d.SectionValues.Clone()
	return &c
}

// DisplayName is the Header name, used for titles and file names.
func (d *Document) DisplayName() string {
	if h, ok := d.Section(model.KindHeader).(model.Header); ok {
		return h.Name
	}
	return ""
}
