package resolver

// ValidateTemplate checks the template's structure and returns every
// violation found as an operator-readable message. An empty result means
// the template is usable. Later checks depend on earlier ones, so the
// first failing check ends validation.
func ValidateTemplate(doc any) []string {
	template, ok := doc.(map[string]any)
	if !ok {
		return []string{"template must be a JSON object"}
	}

	raw, ok := template["servers"]
	if !ok {
		return []string{"template must contain a 'servers' section"}
	}

	servers, ok := raw.(map[string]any)
	if !ok {
		return []string{"'servers' section must be a JSON object"}
	}

	if len(servers) == 0 {
		return []string{"'servers' section cannot be empty"}
	}

	return nil
}
