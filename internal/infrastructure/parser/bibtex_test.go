package parser

import "testing"

const sampleBib = `@article{smith2001,
  title={Giant Cell Tumor of the
         Cervical Spine},
  abstract={A report of C2 involvement.},
  journal={Spine},
  year={2001},
  author={Smith, J.},
  doi={10.1000/gct.2001}
}

@article{doe2010,
  title = {Osteoclastoma of the Atlas},
  year = {2010}
}
`

func TestParseBibTeX(t *testing.T) {
	t.Parallel()

	records, err := ParseBibTeX(sampleBib)
	if err != nil {
		t.Fatalf("ParseBibTeX error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Key != "smith2001" {
		t.Fatalf("unexpected key: %s", first.Key)
	}
	if first.Title != "Giant Cell Tumor of the Cervical Spine" {
		t.Fatalf("newlines not flattened: %q", first.Title)
	}
	if first.Abstract != "A report of C2 involvement." {
		t.Fatalf("unexpected abstract: %q", first.Abstract)
	}
	if first.Journal != "Spine" || first.Year != "2001" || first.DOI != "10.1000/gct.2001" {
		t.Fatalf("unexpected metadata: %+v", first)
	}

	second := records[1]
	if second.Key != "doe2010" {
		t.Fatalf("unexpected key: %s", second.Key)
	}
	if second.Abstract != "" {
		t.Fatalf("missing abstract should be empty, got %q", second.Abstract)
	}
	if second.Title != "Osteoclastoma of the Atlas" {
		t.Fatalf("spaced field assignment not parsed: %q", second.Title)
	}
}

func TestParseBibTeXNoEntries(t *testing.T) {
	t.Parallel()

	if _, err := ParseBibTeX("just some prose"); err == nil {
		t.Fatalf("expected error for content without entries")
	}
}
