package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeList(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestNew_FiltersAndDedupes(t *testing.T) {
	d, err := New(
		[]string{"Apple", "crane", "apple", "toolong", "ab", "caf3"},
		[]string{"EERIE", "crane", " house ", "x"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := d.Answers(), []string{"apple", "crane"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
	if d.Len() != 4 {
		t.Fatalf("Len = %d, want 4 (apple crane eerie house)", d.Len())
	}
	if d.AnswerCount() != 2 {
		t.Fatalf("AnswerCount = %d", d.AnswerCount())
	}
	if !d.IsAnswer("APPLE") || d.IsAnswer("eerie") {
		t.Fatal("IsAnswer does not match the answer pool")
	}
}

func TestNew_NoAnswers(t *testing.T) {
	_, err := New([]string{"toolong"}, []string{"apple"})
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("err = %v, want ErrNoAnswers", err)
	}
}

func TestNew_Options(t *testing.T) {
	d, err := New([]string{"abc", "abd", "xyz"}, nil, WithLength(3), WithAlphabet("ABCD"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Length() != 3 || d.Alphabet() != "abcd" {
		t.Fatalf("length=%d alphabet=%q", d.Length(), d.Alphabet())
	}
	if d.Contains("xyz") {
		t.Fatal("word outside the alphabet was kept")
	}
	if _, err := New([]string{"abc"}, nil, WithLength(0)); err == nil {
		t.Fatal("zero length accepted")
	}
	if _, err := New([]string{"abc"}, nil, WithAlphabet("")); err == nil {
		t.Fatal("empty alphabet accepted")
	}
}

func TestContains_CaseInsensitive(t *testing.T) {
	d, err := New([]string{"apple"}, []string{"eerie"})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"apple", "APPLE", "Eerie"} {
		if !d.Contains(w) {
			t.Fatalf("Contains(%q) = false", w)
		}
	}
	if d.Contains("crane") || d.Contains("") {
		t.Fatal("Contains reported a missing word")
	}
}

func TestAnswerAt_Wraps(t *testing.T) {
	d, err := New([]string{"apple", "crane", "house"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[int]string{0: "apple", 2: "house", 3: "apple", -1: "house", 7: "crane"}
	for i, want := range cases {
		if got := d.AnswerAt(i); got != want {
			t.Fatalf("AnswerAt(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestRandomAnswer(t *testing.T) {
	d, err := New([]string{"apple", "crane"}, []string{"eerie"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if w := d.RandomAnswer(); !d.IsAnswer(w) {
			t.Fatalf("RandomAnswer returned %q", w)
		}
	}
}

func TestSuggest(t *testing.T) {
	d, err := New([]string{"apple", "crane"}, []string{"apply", "house"})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ in, want string }{
		{"applz", "apple"}, // ties go to the first loaded word
		{"hovse", "house"},
		{"crane", ""}, // already valid
		{"zzzzz", ""}, // nothing close
		{"", ""},
	}
	for _, tc := range cases {
		if got := d.Suggest(tc.in); got != tc.want {
			t.Fatalf("Suggest(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	in := "# header\nApple\n\n  crane  \n#skip\nhouse\n"
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := []string{"apple", "crane", "house"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestLoad_Embedded(t *testing.T) {
	d, err := Load(context.Background(), Source{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.AnswerCount() == 0 || d.Len() < d.AnswerCount() {
		t.Fatalf("answers=%d words=%d", d.AnswerCount(), d.Len())
	}
	for _, w := range []string{"apple", "crane", "eerie"} {
		if !d.Contains(w) {
			t.Fatalf("embedded dictionary is missing %q", w)
		}
	}
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()
	answers := writeList(t, dir, "answers.txt", "apple\ncrane\n")
	allowed := writeList(t, dir, "allowed.txt", "# extras\neerie\nhouse\n")

	t.Run("both", func(t *testing.T) {
		d, err := Load(context.Background(), Source{AnswersFile: answers, AllowedFile: allowed})
		if err != nil {
			t.Fatal(err)
		}
		if d.AnswerCount() != 2 || d.Len() != 4 {
			t.Fatalf("answers=%d words=%d", d.AnswerCount(), d.Len())
		}
		if d.IsAnswer("eerie") {
			t.Fatal("allowed word became an answer")
		}
	})

	t.Run("allowed only", func(t *testing.T) {
		d, err := Load(context.Background(), Source{AllowedFile: allowed})
		if err != nil {
			t.Fatal(err)
		}
		if !d.IsAnswer("eerie") || d.AnswerCount() != 2 {
			t.Fatalf("allowed file not used as the answer pool: %v", d.Answers())
		}
	})

	t.Run("answers only", func(t *testing.T) {
		d, err := Load(context.Background(), Source{AnswersFile: answers})
		if err != nil {
			t.Fatal(err)
		}
		if d.Len() != 2 {
			t.Fatalf("words=%d, want 2", d.Len())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), Source{AnswersFile: filepath.Join(dir, "nope.txt")})
		if err == nil {
			t.Fatal("missing file loaded")
		}
	})
}
