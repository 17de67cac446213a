package dsl

import (
	"errors"

	"github.com/reoring/structural/schema"
)

// Function returns a callable type.
func Function(params []schema.Schema, returns schema.Schema) *schema.Function {
	return &schema.Function{Parameters: append([]schema.Schema(nil), params...), Returns: returns}
}

// Constructor returns a constructable type.
func Constructor(params []schema.Schema, returns schema.Schema) *schema.Constructor {
	return &schema.Constructor{Parameters: append([]schema.Schema(nil), params...), Returns: returns}
}

// Promise returns an asynchronous result of item.
func Promise(item schema.Schema) *schema.Promise { return &schema.Promise{Item: item} }

var errNotCallable = errors.New("dsl: schema is not a Function or Constructor")

// Parameters returns the parameter list of a function or constructor as a tuple.
func Parameters(s schema.Schema) (*schema.Tuple, error) {
	switch t := s.(type) {
	case *schema.Function:
		return schema.Clone(Tuple(t.Parameters...)).(*schema.Tuple), nil
	case *schema.Constructor:
		return schema.Clone(Tuple(t.Parameters...)).(*schema.Tuple), nil
	}
	return nil, errNotCallable
}

// ReturnType returns a copy of a function's return type.
func ReturnType(s schema.Schema) (schema.Schema, error) {
	f, ok := s.(*schema.Function)
	if !ok {
		return nil, errors.New("dsl: schema is not a Function")
	}
	return schema.Clone(f.Returns), nil
}

// InstanceType returns a copy of a constructor's instance type.
func InstanceType(s schema.Schema) (schema.Schema, error) {
	c, ok := s.(*schema.Constructor)
	if !ok {
		return nil, errors.New("dsl: schema is not a Constructor")
	}
	return schema.Clone(c.Returns), nil
}
