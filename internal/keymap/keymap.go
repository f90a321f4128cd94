// Package keymap maps key presses to named commands, scoped by the
// focused view's context.
package keymap

// Binding associates a key with a command in a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves key presses against registered bindings.
// Context-specific bindings win over global ones.
type Registry struct {
	byContext map[string]map[string]string
}

// NewRegistry builds a registry from a binding list. Later bindings
// for the same key+context replace earlier ones.
func NewRegistry(bindings []Binding) *Registry {
	r := &Registry{byContext: make(map[string]map[string]string)}
	for _, b := range bindings {
		m, ok := r.byContext[b.Context]
		if !ok {
			m = make(map[string]string)
			r.byContext[b.Context] = m
		}
		m[b.Key] = b.Command
	}
	return r
}

// Lookup resolves a key press in the given context, falling back to
// global bindings. Returns the command and whether one was found.
func (r *Registry) Lookup(key, context string) (string, bool) {
	if context != "" && context != "global" {
		if cmd, ok := r.byContext[context][key]; ok {
			return cmd, true
		}
	}
	cmd, ok := r.byContext["global"][key]
	return cmd, ok
}

// ForContext returns the bindings active in a context, context-specific
// first, then globals not shadowed by them.
func (r *Registry) ForContext(context string) []Binding {
	var out []Binding
	seen := make(map[string]bool)
	if context != "" && context != "global" {
		for key, cmd := range r.byContext[context] {
			out = append(out, Binding{Key: key, Command: cmd, Context: context})
			seen[key] = true
		}
	}
	for key, cmd := range r.byContext["global"] {
		if !seen[key] {
			out = append(out, Binding{Key: key, Command: cmd, Context: "global"})
		}
	}
	return out
}
