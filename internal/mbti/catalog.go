package mbti

import "fmt"

// Catalog holds the sixteen type records keyed by 4-letter code.
type Catalog struct {
	records map[string]TypeRecord
}

// NewCatalog validates that the records cover exactly the sixteen codes the
// resolver can emit, each with four characteristics and a non-empty careers
// list.
func NewCatalog(records []TypeRecord) (*Catalog, error) {
	byCode := make(map[string]TypeRecord, len(records))
	for _, r := range records {
		if _, dup := byCode[r.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate code %q", r.Code)
		}
		if r.Title == "" || r.Subtitle == "" || r.Description == "" {
			return nil, fmt.Errorf("catalog: %q has empty content", r.Code)
		}
		if len(r.Characteristics) != 4 {
			return nil, fmt.Errorf("catalog: %q has %d characteristics, want 4", r.Code, len(r.Characteristics))
		}
		if len(r.Careers) == 0 {
			return nil, fmt.Errorf("catalog: %q has no careers", r.Code)
		}
		byCode[r.Code] = r
	}
	for _, code := range AllCodes() {
		if _, ok := byCode[code]; !ok {
			return nil, fmt.Errorf("catalog: missing code %q", code)
		}
	}
	if len(byCode) != len(AllCodes()) {
		return nil, fmt.Errorf("catalog: %d records, want %d", len(byCode), len(AllCodes()))
	}
	return &Catalog{records: byCode}, nil
}

// Lookup returns the record for a type code. ok is false for unknown codes,
// including codes replayed from old persisted summaries after a catalog
// change; callers must degrade to Placeholder rather than fail.
func (c *Catalog) Lookup(code string) (TypeRecord, bool) {
	r, ok := c.records[code]
	return r, ok
}

// Records returns all sixteen records in canonical code order.
func (c *Catalog) Records() []TypeRecord {
	out := make([]TypeRecord, 0, len(c.records))
	for _, code := range AllCodes() {
		out = append(out, c.records[code])
	}
	return out
}

// Placeholder is the empty-shaped record served when a code has no catalog
// entry. Slices are non-nil so display layers can range without guards.
func Placeholder(code string) TypeRecord {
	return TypeRecord{
		Code:            code,
		Characteristics: []Characteristic{},
		Careers:         []string{},
	}
}

// AllCodes lists the sixteen possible type codes, one letter per dimension
// in pair order.
func AllCodes() []string {
	codes := []string{""}
	for _, d := range Dimensions {
		next := make([]string, 0, len(codes)*2)
		for _, c := range codes {
			next = append(next, c+string(d.First), c+string(d.Second))
		}
		codes = next
	}
	return codes
}

var defaultCatalog = mustCatalog(defaultTypeRecords)

// DefaultCatalog returns the built-in sixteen-type catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

func mustCatalog(records []TypeRecord) *Catalog {
	c, err := NewCatalog(records)
	if err != nil {
		panic(err)
	}
	return c
}
