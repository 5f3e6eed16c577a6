package mbti_test

import (
	"testing"

	"github.com/mindtype/mindtype/internal/mbti"
)

func TestAllCodes(t *testing.T) {
	codes := mbti.AllCodes()
	if len(codes) != 16 {
		t.Fatalf("have %d codes, want 16", len(codes))
	}
	seen := map[string]bool{}
	for _, c := range codes {
		if len(c) != 4 || seen[c] {
			t.Fatalf("bad or duplicate code %q", c)
		}
		seen[c] = true
	}
	if codes[0] != "ESTJ" || codes[15] != "INFP" {
		t.Fatalf("canonical order broken: first=%q last=%q", codes[0], codes[15])
	}
}

func TestDefaultCatalogComplete(t *testing.T) {
	cat := mbti.DefaultCatalog()
	for _, code := range mbti.AllCodes() {
		r, ok := cat.Lookup(code)
		if !ok {
			t.Fatalf("missing record for %q", code)
		}
		if r.Title == "" || r.Subtitle == "" || r.Description == "" {
			t.Fatalf("%q has empty content", code)
		}
		if len(r.Characteristics) != 4 {
			t.Fatalf("%q has %d characteristics, want 4", code, len(r.Characteristics))
		}
		if len(r.Careers) == 0 {
			t.Fatalf("%q has no careers", code)
		}
	}
}

func TestLookupINTJ(t *testing.T) {
	r, ok := mbti.DefaultCatalog().Lookup("INTJ")
	if !ok {
		t.Fatal("INTJ missing")
	}
	if r.Title != "建筑师" {
		t.Fatalf("INTJ title = %q", r.Title)
	}
}

func TestLookupUnknownAndPlaceholder(t *testing.T) {
	if _, ok := mbti.DefaultCatalog().Lookup("XXXX"); ok {
		t.Fatal("unknown code resolved")
	}
	p := mbti.Placeholder("XXXX")
	if p.Code != "XXXX" {
		t.Fatalf("placeholder code = %q", p.Code)
	}
	if p.Characteristics == nil || p.Careers == nil {
		t.Fatal("placeholder slices must be non-nil")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	records := mbti.DefaultCatalog().Records()

	if _, err := mbti.NewCatalog(records[:15]); err == nil {
		t.Fatal("accepted 15 records")
	}

	bad := mbti.DefaultCatalog().Records()
	bad[0].Characteristics = bad[0].Characteristics[:3]
	if _, err := mbti.NewCatalog(bad); err == nil {
		t.Fatal("accepted a record with 3 characteristics")
	}

	dup := mbti.DefaultCatalog().Records()
	dup[1] = dup[0]
	if _, err := mbti.NewCatalog(dup); err == nil {
		t.Fatal("accepted duplicate codes")
	}
}
