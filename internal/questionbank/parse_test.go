package questionbank

import (
	"strings"
	"testing"
)

const validReply = `DIFFICULTY: Easy
QUESTION: What is a Python list?
DIFFICULTY: Easy
QUESTION: What is the difference between a list and a tuple?
DIFFICULTY: Medium
QUESTION: How would you profile a slow Python function?
DIFFICULTY: Hard
QUESTION: How does the GIL affect multi-threaded Python programs?`

func TestParseQuestions_Valid(t *testing.T) {
	questions, err := ParseQuestions(validReply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.Difficulty != RequiredSequence[i] {
			t.Errorf("question %d difficulty = %q, want %q", i, q.Difficulty, RequiredSequence[i])
		}
		if q.Text == "" {
			t.Errorf("question %d has empty text", i)
		}
	}
	if questions[3].Text != "How does the GIL affect multi-threaded Python programs?" {
		t.Errorf("unexpected last question: %q", questions[3].Text)
	}
}

func TestParseQuestions_CaseInsensitiveDifficulty(t *testing.T) {
	reply := strings.NewReplacer("Easy", "EASY", "Medium", "medium", "Hard", "hArd").Replace(validReply)
	questions, err := ParseQuestions(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range questions {
		if q.Difficulty != RequiredSequence[i] {
			t.Errorf("question %d difficulty = %q, want %q", i, q.Difficulty, RequiredSequence[i])
		}
	}
}

func TestParseQuestions_IgnoresSurroundingNoise(t *testing.T) {
	reply := "Here are your questions:\n\n" + validReply + "\n\nGood luck!"
	if _, err := ParseQuestions(reply); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseQuestions_WrongCount(t *testing.T) {
	reply := `DIFFICULTY: Easy
QUESTION: Only one question here.`
	if _, err := ParseQuestions(reply); err == nil {
		t.Fatal("expected error for one question")
	}
}

func TestParseQuestions_WrongOrder(t *testing.T) {
	reply := `DIFFICULTY: Hard
QUESTION: q1
DIFFICULTY: Easy
QUESTION: q2
DIFFICULTY: Medium
QUESTION: q3
DIFFICULTY: Easy
QUESTION: q4`
	if _, err := ParseQuestions(reply); err == nil {
		t.Fatal("expected error for out-of-order difficulties")
	}
}

func TestParseQuestions_UnknownDifficulty(t *testing.T) {
	reply := strings.Replace(validReply, "DIFFICULTY: Hard", "DIFFICULTY: Expert", 1)
	if _, err := ParseQuestions(reply); err == nil {
		t.Fatal("expected error for unknown difficulty label")
	}
}

func TestParseQuestions_DropsIncompletePairs(t *testing.T) {
	// A difficulty line with no question text does not count toward the four.
	reply := validReply + "\nDIFFICULTY: Hard"
	questions, err := ParseQuestions(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
}

func TestParseQuestions_Empty(t *testing.T) {
	if _, err := ParseQuestions(""); err == nil {
		t.Fatal("expected error for empty reply")
	}
}
