package model

import (
	"encoding/json"
	"fmt"
)

// DecodeValue decodes raw JSON into the concrete value type for kind. Field
// presence is not checked; only the JSON shape must match.
func DecodeValue(kind SectionKind, raw json.RawMessage) (SectionValue, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown section kind %q", kind)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultValue(kind), nil
	}
	var (
		v   SectionValue
		err error
	)
	switch kind {
	case KindHeader:
		v, err = decodeAs[Header](raw)
	case KindObjective:
		v, err = decodeAs[Objective](raw)
	case KindEducation:
		v, err = decodeAs[Education](raw)
	case KindProjects:
		v, err = decodeAs[Projects](raw)
	case KindWorkExperience:
		v, err = decodeAs[WorkExperience](raw)
	case KindPositions:
		v, err = decodeAs[Positions](raw)
	case KindCertifications:
		v, err = decodeAs[Certifications](raw)
	case KindPublications:
		v, err = decodeAs[Publications](raw)
	case KindAchievements:
		v, err = decodeAs[Achievements](raw)
	case KindHobbies:
		v, err = decodeAs[Hobbies](raw)
	case KindLanguages:
		v, err = decodeAs[Languages](raw)
	case KindTechnicalSkills:
		v, err = decodeAs[TechnicalSkills](raw)
	}
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", kind, err)
	}
	return v, nil
}

func decodeAs[T SectionValue](raw json.RawMessage) (SectionValue, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SectionValues maps a kind to its value. It decodes each entry according to
// its key so the union stays typed after a JSON round trip.
type SectionValues map[SectionKind]SectionValue

func (s *SectionValues) UnmarshalJSON(b []byte) error {
	var raw map[SectionKind]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(SectionValues, len(raw))
	for k, r := range raw {
		v, err := DecodeValue(k, r)
		if err != nil {
			return err
		}
		out[k] = v
	}
	*s = out
	return nil
}

// Clone returns a shallow copy of the map. Values are replaced wholesale on
// edit, never mutated in place, so sharing them is safe.
func (s SectionValues) Clone() SectionValues {
	out := make(SectionValues, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
