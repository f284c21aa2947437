// typed_field.go - optional, type-safe access to instance fields.
//
// Copyright (c) 2025.
// SPDX-License-Identifier: MIT
//
// Overview
//
//	Param provides typed reads of the fields an instance was built with. It
//	complements Error.Field / Error.Fields, which return untyped values.
//
// Usage
//
//	var (
//	    UserNotFound = xgxkind.MustDefine(xgxkind.Spec{
//	        Tag:      "UserNotFoundError",
//	        Template: "user $id not found",
//	        Fields:   []string{"id"},
//	    })
//	    PUserID = xgxkind.Param[int64]("id")
//	)
//
//	err := UserNotFound.New(xgxkind.Args{"id": int64(42)})
//	id, ok := PUserID.Get(err) // 42, true
//
// Caveats
//
//	The stored dynamic type MUST match T exactly; no conversions are made.
package xgxkind

import (
	"fmt"
)

// TypedParam reads a named field as T.
type TypedParam[T any] struct {
	name string
}

// Param constructs a TypedParam[T] for a field name.
func Param[T any](name string) TypedParam[T] {
	return TypedParam[T]{name: name}
}

// Name returns the field name.
func (p TypedParam[T]) Name() string { return p.name }

// Args returns a single-entry Args for val, for use at construction.
func (p TypedParam[T]) Args(val T) Args {
	return Args{p.name: val}
}

// Get retrieves the typed value from the first instance in err's unwrap graph.
// Returns (zero, false) if there is no instance, the field is absent, or the
// value has a different dynamic type.
func (p TypedParam[T]) Get(err error) (T, bool) {
	var zero T
	e, ok := AsError(err)
	if !ok {
		return zero, false
	}
	v, ok := e.Field(p.name)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is like Get but panics if the field is missing or mistyped.
// Intended for tests.
func (p TypedParam[T]) MustGet(err error) T {
	var zero T
	e, ok := AsError(err)
	if !ok {
		panic(fmt.Errorf("xgxkind.TypedParam[%T](%q): no instance in %v", zero, p.name, err))
	}
	v, ok := e.Field(p.name)
	if !ok {
		panic(fmt.Errorf("xgxkind.TypedParam[%T](%q): field missing", zero, p.name))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("xgxkind.TypedParam[%T](%q): wrong dynamic type (%T)", zero, p.name, v))
	}
	return tv
}
