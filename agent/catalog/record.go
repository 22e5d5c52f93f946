package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one product entry. The source JSON object is retained so that
// fields the catalog does not model survive a round trip unchanged.
type Record struct {
	Name              string
	Price             json.Number
	StockAvailability bool

	raw json.RawMessage
}

type recordFields struct {
	Name              string      `json:"Name"`
	Price             json.Number `json:"Price"`
	StockAvailability bool        `json:"StockAvailability"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields recordFields
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("decode product record: %w", err)
	}

	r.Name = fields.Name
	r.Price = fields.Price
	r.StockAvailability = fields.StockAvailability
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(recordFields{
		Name:              r.Name,
		Price:             r.Price,
		StockAvailability: r.StockAvailability,
	})
}

// Fields decodes the full record, including pass-through fields.
func (r Record) Fields() (map[string]any, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	out := map[string]any{}
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode product fields: %w", err)
	}
	return out, nil
}
