package pipeline

import (
	"encoding/json"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
)

// MarshalJSON implements json.Marshaler. The special value is infinite
// when the direct series diverges.
func (r Report) MarshalJSON() ([]byte, error) {
	type plain Report
	return json.Marshal(struct {
		plain
		SpecialValue core.JSONFloat `json:"special_value"`
	}{plain(r), core.JSONFloat(r.SpecialValue)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Report) UnmarshalJSON(data []byte) error {
	type plain Report
	aux := struct {
		*plain
		SpecialValue core.JSONFloat `json:"special_value"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.SpecialValue = float64(aux.SpecialValue)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s MonitorSnapshot) MarshalJSON() ([]byte, error) {
	type plain MonitorSnapshot
	return json.Marshal(struct {
		plain
		MajorMinorRatio core.JSONFloat `json:"major_minor_ratio"`
		SpecialValue    core.JSONFloat `json:"special_value"`
		Dimension       core.JSONFloat `json:"dimension_estimate"`
	}{plain(s), core.JSONFloat(s.MajorMinorRatio), core.JSONFloat(s.SpecialValue), core.JSONFloat(s.Dimension)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *MonitorSnapshot) UnmarshalJSON(data []byte) error {
	type plain MonitorSnapshot
	aux := struct {
		*plain
		MajorMinorRatio core.JSONFloat `json:"major_minor_ratio"`
		SpecialValue    core.JSONFloat `json:"special_value"`
		Dimension       core.JSONFloat `json:"dimension_estimate"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.MajorMinorRatio = float64(aux.MajorMinorRatio)
	s.SpecialValue = float64(aux.SpecialValue)
	s.Dimension = float64(aux.Dimension)
	return nil
}
