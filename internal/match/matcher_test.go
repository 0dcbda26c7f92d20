package match

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Giant Cell Tumor", "GIANT CELL TUMOR"},
		{"  spaced\tout\n text ", "SPACED OUT TEXT"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContainsBoundaryMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"OSTEOCLASTOMA OF THE ATLAS (C1)", "C1", true},
		{"LESION AT C12 LEVEL", "C1", false},
		{"C1", "C1", true},
		{"C1-C2 FIXATION", "C1", true},
		{"THE AC1D TEST", "C1", false},
		{"", "C1", false},
	}
	for _, tc := range tests {
		if got := Contains(tc.text, tc.keyword, ModeBoundary); got != tc.want {
			t.Fatalf("Contains(%q, %q, boundary) = %v, want %v", tc.text, tc.keyword, got, tc.want)
		}
	}
}

func TestContainsAutoModePicksBoundaryForShortCodes(t *testing.T) {
	t.Parallel()

	// Short single-token keywords anchor at word boundaries.
	if Contains("LESION AT C12", "C1", ModeAuto) {
		t.Fatalf("short code matched inside longer token")
	}
	// Longer keywords match as plain substrings, even mid-word.
	if !Contains("TENOSYNOVIAL LESION", "SYNOVIAL", ModeAuto) {
		t.Fatalf("substring keyword did not match inside longer token")
	}
	if !Contains("GIANT CELL TUMOR OF BONE", "GIANT CELL TUMOR", ModeAuto) {
		t.Fatalf("phrase keyword did not match")
	}
}

func TestContainsDocTypeMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"REVIEW OF CERVICAL LESIONS", "REVIEW", true},
		{"CERVICAL LESIONS: A REVIEW", "REVIEW", true},
		{"A REVIEW OF LESIONS", "REVIEW", true},
		{"REVIEW", "REVIEW", true},
		{"A PREVIEW OF LESIONS", "REVIEW", false},
		{"SYSTEMATIC REVIEW OF LESIONS", "SYSTEMATIC REVIEW", true},
	}
	for _, tc := range tests {
		if got := Contains(tc.text, tc.keyword, ModeDocType); got != tc.want {
			t.Fatalf("Contains(%q, %q, doctype) = %v, want %v", tc.text, tc.keyword, got, tc.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	keywords := []string{"OSTEOCLASTOMA", "GIANT CELL TUMOR"}
	if !ContainsAny("A GIANT CELL TUMOR CASE", keywords, ModeSubstring) {
		t.Fatalf("expected a match")
	}
	if ContainsAny("AN UNRELATED TITLE", keywords, ModeSubstring) {
		t.Fatalf("unexpected match")
	}
	if ContainsAny("ANYTHING", nil, ModeSubstring) {
		t.Fatalf("empty keyword set matched")
	}
}

func TestMemoMatchCachesPerCategory(t *testing.T) {
	t.Parallel()

	memo := NewMemo("Giant Cell Tumor of C2", "Histology confirmed osteoclastoma.")

	first := memo.Match("inclusion/primary", []string{"GIANT CELL TUMOR"}, ModeAuto)
	if !first.InTitle || first.InAbstract {
		t.Fatalf("unexpected result: %+v", first)
	}

	// A second lookup under the same key returns the cached result even with
	// different keywords; callers key by category, which fixes the set.
	second := memo.Match("inclusion/primary", []string{"NO SUCH TERM"}, ModeAuto)
	if second != first {
		t.Fatalf("memo did not cache: %+v vs %+v", second, first)
	}

	other := memo.Match("inclusion/other", []string{"OSTEOCLASTOMA"}, ModeAuto)
	if other.InTitle || !other.InAbstract {
		t.Fatalf("unexpected result for second category: %+v", other)
	}
}

func TestResultEither(t *testing.T) {
	t.Parallel()

	if (Result{}).Either() {
		t.Fatalf("empty result reported a match")
	}
	if !(Result{InAbstract: true}).Either() {
		t.Fatalf("abstract match not reported")
	}
}
