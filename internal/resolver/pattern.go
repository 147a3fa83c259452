package resolver

import "regexp"

// Pattern matches %NAME% placeholder tokens inside string scalars.
// NAME follows identifier rules: a letter or underscore, then letters,
// digits, or underscores. The zero value is not usable; construct with
// NewPattern.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles the placeholder pattern.
func NewPattern() Pattern {
	return Pattern{re: regexp.MustCompile(`%([a-zA-Z_][a-zA-Z0-9_]*)%`)}
}

// Names returns the placeholder names referenced in s, in order of
// appearance. A name occurring more than once is returned more than once.
func (p Pattern) Names(s string) []string {
	var names []string
	for _, match := range p.re.FindAllStringSubmatch(s, -1) {
		names = append(names, match[1])
	}
	return names
}

// Expand replaces every placeholder occurrence in s with its value from
// credentials. Values are inserted verbatim and the result is not re-scanned,
// so a secret containing placeholder syntax stays literal. An occurrence
// with no credential entry yields a MissingCredentialError.
func (p Pattern) Expand(s string, credentials map[string]string) (string, error) {
	var missing *MissingCredentialError

	result := p.re.ReplaceAllStringFunc(s, func(match string) string {
		name := p.re.FindStringSubmatch(match)[1]

		value, ok := credentials[name]
		if !ok {
			if missing == nil {
				missing = &MissingCredentialError{Name: name}
			}
			return match
		}

		return value
	})

	if missing != nil {
		return "", missing
	}

	return result, nil
}
