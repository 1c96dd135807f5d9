package registry

import (
	"sort"

	"github.com/andy/clienthub/internal/domain"
)

// Predicate decides whether a client is included in the view.
type Predicate func(domain.Client) bool

// Comparator orders the view; it reports whether a sorts before b.
type Comparator func(a, b domain.Client) bool

// View derives the displayed sequence from a registry: the active predicate
// selects clients out of the full registry in insertion order, then the active
// comparator orders them with a stable sort. The view never mutates the
// registry and is recomputed from live registry contents on every read, so it
// can never serve stale data.
type View struct {
	reg     *Registry
	pred    Predicate
	less    Comparator
	version uint64
}

// NewView returns a view over reg with the match-all predicate and the default
// name ordering.
func NewView(reg *Registry) *View {
	return &View{reg: reg, pred: MatchAll, less: ByName}
}

// SetFilter replaces the active predicate. The view is re-derived from the
// full registry, not from the previously filtered subset, so filters never
// compound.
func (v *View) SetFilter(p Predicate) {
	v.pred = p
	v.version++
}

// SetSort replaces the active comparator without touching the predicate.
func (v *View) SetSort(c Comparator) {
	v.less = c
	v.version++
}

// Reset restores the match-all predicate and the default name ordering.
func (v *View) Reset() {
	v.pred = MatchAll
	v.less = ByName
	v.version++
}

// Clients returns the displayed sequence: filtered in registry order, then
// stably sorted so equal elements keep their registry order.
func (v *View) Clients() []domain.Client {
	var out []domain.Client
	for _, c := range v.reg.Clients() {
		if v.pred(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return v.less(out[i], out[j]) })
	return out
}

// At returns the client at the 0-based position in the displayed sequence.
func (v *View) At(i int) (domain.Client, bool) {
	clients := v.Clients()
	if i < 0 || i >= len(clients) {
		return domain.Client{}, false
	}
	return clients[i], true
}

// Len returns the length of the displayed sequence.
func (v *View) Len() int {
	return len(v.Clients())
}

// Version returns a counter that increases whenever the displayed sequence may
// have changed, covering both view reconfiguration and registry mutation.
func (v *View) Version() uint64 {
	return v.version + v.reg.Version()
}
