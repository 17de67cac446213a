package structural

import (
	"github.com/reoring/structural/schema"
)

// refPair identifies a pair of references under comparison.
type refPair struct {
	left, right string
}

// visitor holds the state of a single top-level comparison. It is never
// shared between calls.
type visitor struct {
	refs     map[string]schema.Schema
	depth    int
	maxDepth int
	active   map[refPair]struct{}
	log      Logger
}

func (c *Comparator) newVisitor() *visitor {
	v := &visitor{
		refs:     make(map[string]schema.Schema),
		maxDepth: c.opts.MaxDepth,
		active:   make(map[refPair]struct{}),
		log:      c.opts.Logger,
	}
	if v.maxDepth <= 0 {
		v.maxDepth = DefaultMaxDepth
	}
	if v.log == nil {
		v.log = NopLogger()
	}
	for _, d := range c.opts.Definitions {
		v.registerTree(d)
	}
	return v
}

// register records s under its id. The first registration of an id wins.
func (v *visitor) register(s schema.Schema) {
	if s == nil {
		return
	}
	id := s.SchemaID()
	if id == "" {
		return
	}
	if _, ok := v.refs[id]; !ok {
		v.refs[id] = s
	}
}

// registerTree registers s and every id-bearing node nested in it. Targets of
// Ref and Self are not followed.
func (v *visitor) registerTree(s schema.Schema) {
	if s == nil {
		return
	}
	v.register(s)
	switch t := s.(type) {
	case *schema.Array:
		v.registerTree(t.Items)
	case *schema.Tuple:
		v.registerList(t.Items)
	case *schema.Object:
		for _, p := range t.Properties {
			v.registerTree(p.Schema)
		}
		v.registerTree(t.Additional.Schema)
	case *schema.Record:
		v.registerTree(t.Value)
	case *schema.Union:
		v.registerList(t.Members)
	case *schema.Intersect:
		v.registerList(t.Members)
	case *schema.Function:
		v.registerList(t.Parameters)
		v.registerTree(t.Returns)
	case *schema.Constructor:
		v.registerList(t.Parameters)
		v.registerTree(t.Returns)
	case *schema.Promise:
		v.registerTree(t.Item)
	}
}

func (v *visitor) registerList(list []schema.Schema) {
	for _, s := range list {
		v.registerTree(s)
	}
}

// resolve dereferences a Ref or Self node one hop. Other nodes are returned
// unchanged.
func (v *visitor) resolve(s schema.Schema) (schema.Schema, error) {
	var (
		target string
		self   bool
	)
	switch t := s.(type) {
	case *schema.Ref:
		target = t.Target
	case *schema.Self:
		target, self = t.Target, true
	default:
		return s, nil
	}
	resolved, ok := v.refs[target]
	if !ok {
		return nil, &UnresolvedReferenceError{Target: target, Self: self}
	}
	return resolved, nil
}

// visit is one comparison step: it enforces the depth guard, registers ids
// and resolves references before dispatching on the left kind.
func (v *visitor) visit(left, right schema.Schema) (Result, error) {
	if v.depth >= v.maxDepth {
		v.log.Debugf("depth guard reached at %d: %s extends %s", v.depth, schema.Summary(left, 2), schema.Summary(right, 2))
		return True, nil
	}
	v.depth++
	defer func() { v.depth-- }()

	v.register(left)
	v.register(right)

	lt, lref := schema.Target(left)
	rt, rref := schema.Target(right)
	if !lref && !rref {
		return v.dispatch(left, right)
	}
	if lref && rref {
		pair := refPair{left: lt, right: rt}
		if _, busy := v.active[pair]; busy {
			v.log.Debugf("assuming %s extends %s while already comparing them", lt, rt)
			return True, nil
		}
		v.active[pair] = struct{}{}
		defer delete(v.active, pair)
	}
	l, err := v.resolve(left)
	if err != nil {
		return False, err
	}
	r, err := v.resolve(right)
	if err != nil {
		return False, err
	}
	return v.visit(l, r)
}
