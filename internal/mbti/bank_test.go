package mbti_test

import (
	"testing"

	"github.com/mindtype/mindtype/internal/mbti"
)

func TestDefaultBankShape(t *testing.T) {
	b := mbti.DefaultBank()
	if b.Len() != 48 {
		t.Fatalf("bank has %d questions, want 48", b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		q, ok := b.Question(i)
		if !ok {
			t.Fatalf("question %d missing", i)
		}
		if len(q.Options) != 2 {
			t.Fatalf("question %d has %d options", i, len(q.Options))
		}
		stage, ok := b.Stage(i)
		if !ok {
			t.Fatalf("stage missing for question %d", i)
		}
		a, bb := q.Options[0].Letter, q.Options[1].Letter
		if a != stage.First || bb != stage.Second {
			t.Fatalf("question %d letters %q/%q outside block %s", i, a, bb, stage.Name)
		}
	}
}

func TestBankIndexBounds(t *testing.T) {
	b := mbti.DefaultBank()
	if _, ok := b.Question(-1); ok {
		t.Fatal("Question(-1) ok")
	}
	if _, ok := b.Question(48); ok {
		t.Fatal("Question(48) ok")
	}
	if _, ok := b.Stage(48); ok {
		t.Fatal("Stage(48) ok")
	}
}

func TestNewBankValidation(t *testing.T) {
	good := mbti.DefaultBank().Questions()

	if _, err := mbti.NewBank(good[:47]); err == nil {
		t.Fatal("accepted 47 questions")
	}

	mixed := mbti.DefaultBank().Questions()
	mixed[0].Options[1].Letter = "S" // E paired with S
	if _, err := mbti.NewBank(mixed); err == nil {
		t.Fatal("accepted a question mixing dimensions")
	}

	misplaced := mbti.DefaultBank().Questions()
	misplaced[0], misplaced[12] = misplaced[12], misplaced[0] // S/N question in the E/I block
	if _, err := mbti.NewBank(misplaced); err == nil {
		t.Fatal("accepted a question outside its block")
	}

	if _, err := mbti.NewBank(mbti.DefaultBank().Questions()); err != nil {
		t.Fatalf("rejected the default instrument: %v", err)
	}
}

func TestQuestionsCopyIsDetached(t *testing.T) {
	b := mbti.DefaultBank()
	got := b.Questions()
	got[0].Text = "changed"
	got[0].Options[0].Letter = "J"
	got[0].Options[1].Text = "changed"

	q, _ := b.Question(0)
	if q.Text == "changed" || q.Options[1].Text == "changed" {
		t.Fatal("mutating the copy changed the bank's question")
	}
	if q.Options[0].Letter != mbti.Extraversion {
		t.Fatalf("mutating the copy changed the bank: option letter = %q", q.Options[0].Letter)
	}
}

func TestRedactedStripsLetters(t *testing.T) {
	for i, q := range mbti.DefaultBank().Redacted() {
		for j, o := range q.Options {
			if o.Letter != "" {
				t.Fatalf("question %d option %d still carries letter %q", i, j, o.Letter)
			}
			if o.Text == "" {
				t.Fatalf("question %d option %d lost its text", i, j)
			}
		}
	}
}
