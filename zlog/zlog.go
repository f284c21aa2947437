// Package zlog renders xgxkind errors as zerolog objects.
//
// The core package never logs. This adapter is for applications that use
// github.com/rs/zerolog and want recognized errors as structured objects
// instead of flat strings.
//
//	log.Error().Func(zlog.Err(err)).Msg("lookup failed")
//
// or, for every .Err(err) call:
//
//	zerolog.ErrorMarshalFunc = zlog.MarshalError
package zlog

import (
	"github.com/rs/zerolog"

	xgxkind "github.com/xgx-io/xgx-kind"
)

// Key is the event key used by Err.
const Key = "error"

// object adapts a Structured node to zerolog.LogObjectMarshaler.
type object struct {
	s         *xgxkind.Structured
	withTrace bool
}

func (o object) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", o.s.Kind).Str("message", o.s.Message)
	if o.s.Opaque {
		e.Bool("opaque", true)
	}
	if len(o.s.Fields) > 0 {
		e.Dict("fields", zerolog.Dict().Fields(o.s.Fields))
	}
	if o.withTrace && o.s.Trace != "" {
		e.Str("trace", o.s.Trace)
	}
	if o.s.Cause != nil {
		e.Object("cause", object{s: o.s.Cause, withTrace: false})
	}
}

// Object returns a marshaler for s. The trace is included only for the root
// node when withTrace is set, since each trace already embeds its causes'.
func Object(s xgxkind.Structured, withTrace bool) zerolog.LogObjectMarshaler {
	return object{s: &s, withTrace: withTrace}
}

// MarshalError is suitable for zerolog.ErrorMarshalFunc. Errors containing a
// recognized instance become objects; anything else keeps zerolog's default
// string form.
func MarshalError(err error) interface{} {
	if err == nil {
		return nil
	}
	if e, ok := xgxkind.AsError(err); ok {
		return Object(e.Structured(), false)
	}
	return err
}

// Err returns an event hook that attaches err under Key. Recognized errors
// are written as objects; foreign errors use zerolog's Err.
func Err(err error) func(*zerolog.Event) {
	return func(ev *zerolog.Event) {
		if e, ok := xgxkind.AsError(err); ok {
			ev.Object(Key, Object(e.Structured(), false))
			return
		}
		ev.Err(err)
	}
}

// ErrWithTrace is like Err but also writes the root trace.
func ErrWithTrace(err error) func(*zerolog.Event) {
	return func(ev *zerolog.Event) {
		if e, ok := xgxkind.AsError(err); ok {
			ev.Object(Key, Object(e.Structured(), true))
			return
		}
		ev.Err(err)
	}
}
