package criteria

// DefaultSpec returns the built-in cervical-spine giant-cell-tumor screening
// criteria, usable when no criteria file is supplied.
func DefaultSpec() Spec {
	return Spec{
		Inclusion: map[string][]string{
			"primary_topic": {
				"Giant Cell Tumor", "Giant-Cell Tumor",
				"Giant Cell Tumour", "Giant-Cell Tumour",
				"Osteoclastoma",
			},
			"anatomical_location": {
				"Cervical", "C1", "C2", "C3", "C4", "C5", "C6", "C7",
				"Atlantoaxial",
			},
		},
		Exclusion: map[string][]string{
			"competing_diagnosis": {
				"Osteoblastoma", "Aneurysmal Bone Cyst",
				"Metastasis", "Metastases",
				"Lymphoma", "Chordoma", "Plasmacytoma",
			},
			"origin_exclusion": {
				"Synovial", "Tenosynovial",
			},
			"study_types": {
				"Systematic Review", "Meta-Analysis",
				"Narrative Review", "Literature Review",
				"Review",
			},
		},
		Rules: map[string]any{
			RuleCompetingWhen: "Metastas",
		},
		Description: "Original articles on giant cell tumor (osteoclastoma) of the cervical spine; bone origin only.",
	}
}

// Default builds the validated model for DefaultSpec. The built-in spec is
// structurally valid, so construction cannot fail.
func Default() *Model {
	m, err := New(DefaultSpec())
	if err != nil {
		panic("criteria: built-in default spec is invalid: " + err.Error())
	}
	return m
}
