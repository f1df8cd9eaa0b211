package schema

// Requirement is a node in the boolean algebra over option presence/value
// leaves described in spec.md §3 ("Requirement tree"). Nodes are data-only —
// no closures are stored on them — so the tree can be walked by both the
// evaluator (reqeval) and the help formatter without re-deriving behavior.
type Requirement interface {
	requirementNode()
}

// LeafMode discriminates what a [ReqLeaf] demands of its key.
type LeafMode int

const (
	// LeafPresent demands the key was specified (the object-form "null").
	LeafPresent LeafMode = iota
	// LeafAbsent demands the key was not specified (the object-form
	// "undefined").
	LeafAbsent
	// LeafEquals demands the key was specified with a particular value.
	LeafEquals
)

// ReqLeaf references a single option by name, never by pointer — the
// validator rejects self-reference and unknown keys, and no cycles can
// exist because leaves never point into the tree.
type ReqLeaf struct {
	Key      string
	Mode     LeafMode
	Expected any
}

func (*ReqLeaf) requirementNode() {}

// ReqAll is satisfied when every item is satisfied (short-circuits on the
// first failure).
type ReqAll struct {
	Items []Requirement
}

func (*ReqAll) requirementNode() {}

// ReqOne is satisfied when at least one item is satisfied (short-circuits on
// the first success).
type ReqOne struct {
	Items []Requirement
}

func (*ReqOne) requirementNode() {}

// ReqNot flips the negate bit for its single child.
type ReqNot struct {
	Item Requirement
}

func (*ReqNot) requirementNode() {}

// Req builds a leaf demanding that key was specified, with no constraint on
// its value.
func Req(key string) Requirement {
	return &ReqLeaf{Key: key, Mode: LeafPresent}
}

// ReqAbsent builds a leaf demanding that key was not specified.
func ReqAbsent(key string) Requirement {
	return &ReqLeaf{Key: key, Mode: LeafAbsent}
}

// ReqEquals builds a leaf demanding that key was specified with a value
// equal to want.
func ReqEquals(key string, want any) Requirement {
	return &ReqLeaf{Key: key, Mode: LeafEquals, Expected: want}
}

// All builds a [ReqAll] over items.
func All(items ...Requirement) Requirement {
	return &ReqAll{Items: items}
}

// One builds a [ReqOne] over items.
func One(items ...Requirement) Requirement {
	return &ReqOne{Items: items}
}

// Not builds a [ReqNot] wrapping item.
func Not(item Requirement) Requirement {
	return &ReqNot{Item: item}
}

// RequirementKeys walks r and returns every key referenced by a leaf, in
// tree order, duplicates included. The validator uses this to check that
// every referenced key exists in the schema (invariant 6 of spec.md §3).
func RequirementKeys(r Requirement) []string {
	var keys []string

	var walk func(Requirement)

	walk = func(n Requirement) {
		switch v := n.(type) {
		case nil:
			return
		case *ReqLeaf:
			keys = append(keys, v.Key)
		case *ReqAll:
			for _, item := range v.Items {
				walk(item)
			}
		case *ReqOne:
			for _, item := range v.Items {
				walk(item)
			}
		case *ReqNot:
			walk(v.Item)
		}
	}

	walk(r)

	return keys
}
