package resolver

import (
	"fmt"
	"sort"
	"strings"
)

// Source loads the credential document for a server. Implementations
// return *document.NotFoundError when no credential file exists and
// *document.ParseError when the file is not valid structured data.
type Source interface {
	Load(server string) (any, error)
}

// Resolver substitutes %NAME% placeholders in a template's server configs
// with values from per-server credential documents.
type Resolver struct {
	// Credentials supplies the per-server credential documents.
	Credentials Source

	// OnUnused is called when a credential file carries entries no
	// placeholder references. Unused credentials never fail a run;
	// leave nil to ignore them.
	OnUnused func(server string, unused []string)

	pattern Pattern
}

// New creates a Resolver reading credentials from creds.
func New(creds Source) *Resolver {
	return &Resolver{
		Credentials: creds,
		pattern:     NewPattern(),
	}
}

// FindPlaceholders walks node depth-first over maps and slices and collects
// the placeholder names embedded in its string scalars.
func (r *Resolver) FindPlaceholders(node any) map[string]struct{} {
	found := make(map[string]struct{})
	r.findPlaceholders(node, found)
	return found
}

func (r *Resolver) findPlaceholders(node any, found map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for _, value := range v {
			r.findPlaceholders(value, found)
		}
	case []any:
		for _, item := range v {
			r.findPlaceholders(item, found)
		}
	case string:
		for _, name := range r.pattern.Names(v) {
			found[name] = struct{}{}
		}
	}
}

// ExtractSecrets walks doc and collects string values whose key is in
// wanted. Only maps are recursed into; a secret nested inside an array is
// never found. Credential files are expected to be keyed objects.
func (r *Resolver) ExtractSecrets(doc any, wanted map[string]struct{}) map[string]string {
	secrets := make(map[string]string)
	extractSecrets(doc, wanted, secrets)
	return secrets
}

func extractSecrets(doc any, wanted map[string]struct{}, secrets map[string]string) {
	m, ok := doc.(map[string]any)
	if !ok {
		return
	}

	for key, value := range m {
		if s, ok := value.(string); ok {
			if _, want := wanted[key]; want {
				secrets[key] = s
			}
			continue
		}
		extractSecrets(value, wanted, secrets)
	}
}

// Reconcile compares the placeholders a config references against the
// credentials available for it. Every name in missing makes the server
// unresolvable; names in unused are informational only. Both results are
// sorted for stable output.
func Reconcile(placeholders map[string]struct{}, credentials map[string]string) (missing, unused []string) {
	for name := range placeholders {
		if _, ok := credentials[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range credentials {
		if _, ok := placeholders[name]; !ok {
			unused = append(unused, name)
		}
	}

	sort.Strings(missing)
	sort.Strings(unused)
	return missing, unused
}

// Substitute returns a copy of node with every placeholder occurrence in its
// string scalars replaced by the matching credential value. Non-container,
// non-string values are passed through unchanged. The input is not mutated.
func (r *Resolver) Substitute(node any, credentials map[string]string) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			substituted, err := r.Substitute(value, credentials)
			if err != nil {
				return nil, err
			}
			out[key] = substituted
		}
		return out, nil

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			substituted, err := r.Substitute(item, credentials)
			if err != nil {
				return nil, err
			}
			out[i] = substituted
		}
		return out, nil

	case string:
		return r.pattern.Expand(v, credentials)

	default:
		return node, nil
	}
}

// Resolve validates template and resolves every server config against its
// credential document. Servers without placeholders pass through untouched
// and load no credentials. Top-level keys other than "servers" are carried
// over verbatim. The first failing server aborts the run and no partial
// result is returned.
func (r *Resolver) Resolve(template map[string]any) (map[string]any, error) {
	if violations := ValidateTemplate(template); len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, strings.Join(violations, "; "))
	}

	servers := template["servers"].(map[string]any)

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	processed := make(map[string]any, len(servers))
	for _, name := range names {
		resolved, err := r.resolveServer(name, servers[name])
		if err != nil {
			return nil, err
		}
		processed[name] = resolved
	}

	out := make(map[string]any, len(template))
	for key, value := range template {
		out[key] = value
	}
	out["servers"] = processed

	return out, nil
}

func (r *Resolver) resolveServer(name string, config any) (any, error) {
	placeholders := r.FindPlaceholders(config)
	if len(placeholders) == 0 {
		return config, nil
	}

	doc, err := r.Credentials.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load credentials for %s: %w", name, err)
	}

	secrets := r.ExtractSecrets(doc, placeholders)

	missing, unused := Reconcile(placeholders, secrets)
	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Server: name, Missing: missing}
	}
	if len(unused) > 0 && r.OnUnused != nil {
		r.OnUnused(name, unused)
	}

	return r.Substitute(config, secrets)
}
