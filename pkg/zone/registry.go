package zone

// Registry is the flat index over every shopper-reachable zone, assembled
// once the whole graph exists. It answers membership queries in O(1) and
// iterates zones in creation order. The registry holds IDs only; the graph
// owns the zones themselves.
type Registry struct {
	ids    []ID
	member map[ID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{member: make(map[ID]struct{})}
}

// Add records id in the registry. Adding an ID twice is a no-op.
func (r *Registry) Add(id ID) {
	if _, ok := r.member[id]; ok {
		return
	}
	r.member[id] = struct{}{}
	r.ids = append(r.ids, id)
}

// Contains reports whether id is a known shopper zone.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.member[id]
	return ok
}

// Len returns the number of registered zones.
func (r *Registry) Len() int { return len(r.ids) }

// IDs returns the registered zone IDs in creation order. The returned slice
// is a copy.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.ids))
	copy(out, r.ids)
	return out
}

// Any returns an arbitrary registered zone. Used to recover agents that have
// lost their zone reference.
func (r *Registry) Any() (ID, bool) {
	if len(r.ids) == 0 {
		return None, false
	}
	return r.ids[0], true
}
