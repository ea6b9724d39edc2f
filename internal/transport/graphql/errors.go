package graphql

import (
	"go-tenant-user-api/internal/lang"
	"go-tenant-user-api/internal/service"
)

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is one entry of the response "errors" array. Every key is part of
// the external contract, including the always-present trace.
type Error struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations"`
	Extensions map[string]any `json:"extensions"`
	Path       []any          `json:"path"`
	Trace      []any          `json:"trace"`
}

// Response is the operation envelope. Failures keep the operation key in
// data (as null) and add errors; the transport status is 200 either way.
type Response struct {
	Data   map[string]any `json:"data"`
	Errors []Error        `json:"errors,omitempty"`
}

func newError(msg string, op Operation, category string) Error {
	return Error{
		Message:    msg,
		Locations:  []Location{{Line: op.Line, Column: op.Column}},
		Extensions: map[string]any{"category": category},
		Path:       []any{op.Name},
		Trace:      []any{},
	}
}

// mapError shapes a service failure into the envelope. Localization of
// rule keys happens here and nowhere deeper.
func mapError(err error, op Operation) Error {
	switch e := err.(type) {
	case *service.UnauthorizedError:
		return newError(service.UnauthorizedMessage, op, "authorization")
	case *service.ValidationError:
		out := newError("Validation failed for the given input.", op, "validation")
		fields := map[string][]string{}
		for _, v := range e.Violations {
			fields[v.Field] = append(fields[v.Field], lang.Trans(v.Key))
		}
		out.Extensions["validation"] = fields
		return out
	case *service.NotFoundError:
		return newError(e.Error(), op, "internal")
	default:
		return newError("Internal server error", op, "internal")
	}
}
