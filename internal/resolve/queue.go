// Package resolve implements the fixpoint-style deferred-resolution engine
// described as the "Unresolved Queue": a FIFO of items that could not be
// completed immediately by the Statement Reader, retried to convergence.
//
// This generalizes the retry-and-requeue loop pkg/yang previously applied
// only to augments in Modules.Process to every deferred-reference kind a
// schema compiler needs: typedef chains, leafref paths, identityref
// bases, uses/grouping expansion, augment targeting, list keys/unique
// paths, choice defaults, feature cycles, XPath syntax checks,
// module-implemented propagation, and extension recursion.
package resolve

import "fmt"

// Kind tags a deferred item with the reference it is waiting on.
type Kind int

// The unresolved-item kinds tracked by the queue.
const (
	TypeDer Kind = iota
	TypeLeafref
	TypeIdentRef
	IdentityBase
	Uses
	Augment
	ListKeys
	ListUnique
	ChoiceDefault
	Feature
	XPathSyntax
	ModImplement
	Extension
	TypedefDefault
)

func (k Kind) String() string {
	switch k {
	case TypeDer:
		return "TypeDer"
	case TypeLeafref:
		return "TypeLeafref"
	case TypeIdentRef:
		return "TypeIdentRef"
	case IdentityBase:
		return "IdentityBase"
	case Uses:
		return "Uses"
	case Augment:
		return "Augment"
	case ListKeys:
		return "ListKeys"
	case ListUnique:
		return "ListUnique"
	case ChoiceDefault:
		return "ChoiceDefault"
	case Feature:
		return "Feature"
	case XPathSyntax:
		return "XPathSyntax"
	case ModImplement:
		return "ModImplement"
	case Extension:
		return "Extension"
	case TypedefDefault:
		return "TypedefDefault"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Location is the source-position breadcrumb attached to an Item for
// diagnostics: the (module, statement path, byte offset) triple every
// compilation error should carry.
type Location struct {
	Module string
	Path   string
	Offset int
}

func (l Location) String() string {
	if l.Module == "" {
		return l.Path
	}
	return l.Module + ":" + l.Path
}

// Resolution is the outcome of one retry attempt.
type Resolution int

const (
	// Done means the item completed and should be removed from the queue.
	Done Resolution = iota
	// Blocked means the item still cannot complete and should be retried
	// on the next pass.
	Blocked
	// Failed means the item can never complete; it is an error, not a
	// retry candidate.
	Failed
)

// Item is a single deferred unit of work. Retry is a pure function of
// whatever Context/state it closed over and this Item's own fields; it
// must not have side effects visible outside a successful (Done) return,
// so that repeated Blocked attempts are safe.
type Item struct {
	Kind     Kind
	Where    Location
	Retry    func() (Resolution, error)
	lastErr  error
	attempts int
}

// Queue is a FIFO of pending Items, drained to a fixpoint by Run.
type Queue struct {
	items []*Item
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Push enqueues item for later resolution.
func (q *Queue) Push(item *Item) {
	q.items = append(q.items, item)
}

// Len reports the number of items still pending.
func (q *Queue) Len() int {
	return len(q.items)
}

// CycleError is returned by Run when a pass completes with zero progress
// while items remain; it names the first item still blocked.
type CycleError struct {
	First Item
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("UnresolvedCycle: %s: %s blocked after %d attempt(s)", e.First.Where, e.First.Kind, e.First.attempts)
}

// Run drains q to a fixpoint: each pass retries every still-pending item;
// if a pass makes at least one successful (Done) resolution, another pass
// runs; if a pass resolves nothing and items remain, Run returns a
// *CycleError naming the first blocked item. Items whose Retry reports
// Failed are collected as hard errors and removed from the queue; they do
// not by themselves trigger a cycle failure -- an outright failure is
// distinct from an item that is merely still blocked.
func (q *Queue) Run() []error {
	var errs []error
	for len(q.items) > 0 {
		var next []*Item
		progressed := 0
		for _, it := range q.items {
			it.attempts++
			res, err := it.Retry()
			switch res {
			case Done:
				progressed++
				if err != nil {
					errs = append(errs, err)
				}
			case Failed:
				progressed++
				it.lastErr = err
				if err != nil {
					errs = append(errs, err)
				}
			case Blocked:
				next = append(next, it)
			}
		}
		if progressed == 0 {
			errs = append(errs, &CycleError{First: *next[0]})
			break
		}
		q.items = next
	}
	return errs
}
