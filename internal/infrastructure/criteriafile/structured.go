package criteriafile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"BibScreen/internal/criteria"
)

// parseStructured handles direct YAML and JSON criteria files. JSON is a
// YAML subset, so one decoder covers both extensions.
func parseStructured(raw []byte) (criteria.Spec, error) {
	spec := emptySpec()
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return criteria.Spec{}, fmt.Errorf("decode structured criteria: %w", err)
	}
	if spec.Inclusion == nil {
		spec.Inclusion = map[string][]string{}
	}
	if spec.Exclusion == nil {
		spec.Exclusion = map[string][]string{}
	}
	if spec.Rules == nil {
		spec.Rules = map[string]any{}
	}
	return spec, nil
}
