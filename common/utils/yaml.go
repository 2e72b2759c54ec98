package utils

import "gopkg.in/yaml.v3"

// MergeYAML deep merges two YAML documents, newValues wins on conflicts.
func MergeYAML(oldValues string, newValues string) (string, error) {
	if oldValues == "" {
		return newValues, nil
	}

	if newValues == "" {
		return oldValues, nil
	}

	var oldValuesYAML map[string]interface{}
	var newValuesYAML map[string]interface{}

	if err := yaml.Unmarshal([]byte(oldValues), &oldValuesYAML); err != nil {
		return "", err
	}

	if err := yaml.Unmarshal([]byte(newValues), &newValuesYAML); err != nil {
		return "", err
	}

	mergedValues, err := yaml.Marshal(MergeMaps(oldValuesYAML, newValuesYAML))

	return string(mergedValues), err
}

// MergeMaps deep merges b into a copy of a.
func MergeMaps(a, b map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(a))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if v, ok := v.(map[string]interface{}); ok {
			if bv, ok := out[k]; ok {
				if bv, ok := bv.(map[string]interface{}); ok {
					out[k] = MergeMaps(bv, v)
					continue
				}
			}
		}
		out[k] = v
	}
	return out
}
