package sequence

import (
	"encoding/json"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
)

// Variance, StdDev and Range overflow for finite inputs of opposite extreme
// sign, so they are encoded through core.JSONFloat.

// MarshalJSON implements json.Marshaler.
func (s Stats) MarshalJSON() ([]byte, error) {
	type plain Stats
	return json.Marshal(struct {
		plain
		Variance core.JSONFloat `json:"variance"`
		StdDev   core.JSONFloat `json:"std_dev"`
		Range    core.JSONFloat `json:"range"`
	}{plain(s), core.JSONFloat(s.Variance), core.JSONFloat(s.StdDev), core.JSONFloat(s.Range)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stats) UnmarshalJSON(data []byte) error {
	type plain Stats
	aux := struct {
		*plain
		Variance core.JSONFloat `json:"variance"`
		StdDev   core.JSONFloat `json:"std_dev"`
		Range    core.JSONFloat `json:"range"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Variance = float64(aux.Variance)
	s.StdDev = float64(aux.StdDev)
	s.Range = float64(aux.Range)
	return nil
}
