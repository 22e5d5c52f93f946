package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	contractx "github.com/tanpawarit/ShopBot/agent/contract"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var catalogSchema []byte

// Catalog is the read-only product list. It is built once at start-up and
// shared by reference; nothing mutates it afterwards.
type Catalog struct {
	records []Record
}

func New(records ...Record) *Catalog {
	return &Catalog{records: append([]Record(nil), records...)}
}

func MustLoad(path string) *Catalog {
	c, err := Load(path)
	if err != nil {
		panic(err)
	}
	return c
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", contractx.ErrCatalogLoad, path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the catalog schema and decodes it in order.
func Parse(data []byte) (*Catalog, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: catalog is not valid JSON", contractx.ErrCatalogLoad)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: schema validation: %v", contractx.ErrCatalogLoad, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", contractx.ErrCatalogLoad, strings.Join(msgs, "; "))
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrCatalogLoad, err)
	}
	return &Catalog{records: records}, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	return append([]Record(nil), c.records...)
}

// First returns the earliest record whose name contains fragment, ignoring case.
func (c *Catalog) First(fragment string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	for _, r := range c.records {
		if matches(r, fragment) {
			return r, true
		}
	}
	return Record{}, false
}

// InStock returns every matching record that is available, in catalog order.
func (c *Catalog) InStock(fragment string) []Record {
	if c == nil {
		return nil
	}
	var out []Record
	for _, r := range c.records {
		if matches(r, fragment) && r.StockAvailability {
			out = append(out, r)
		}
	}
	return out
}

// No trimming or punctuation folding; an empty fragment matches everything.
func matches(r Record, fragment string) bool {
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(fragment))
}
