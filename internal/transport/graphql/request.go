package graphql

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

// Request is the standard GraphQL-over-HTTP POST body.
type Request struct {
	Query         string          `json:"query"`
	OperationName string          `json:"operationName"`
	Variables     json.RawMessage `json:"variables"`
}

// Operation is the top-level field a document selects, plus where it sits
// in the source (reported back in error locations).
type Operation struct {
	Name   string
	Line   int
	Column int
}

var errNoOperation = errors.New("no top-level field in document")

// topLevelField scans the document for the first field inside the
// operation's selection set. This is deliberately not an SDL parser: the
// server dispatches on the field name and ignores the rest of the
// document, so aliases, fragments and nested selections never matter here.
func topLevelField(query string) (Operation, error) {
	depth := 0
	line, col := 1, 0
	runes := []rune(query)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col++
		switch {
		case r == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			i-- // let the loop handle the newline
		case r == '{':
			depth++
		case r == '}':
			depth--
		case depth == 1 && isNameStart(r):
			start := i
			for i < len(runes) && isNamePart(runes[i]) {
				i++
			}
			return Operation{
				Name:   string(runes[start:i]),
				Line:   line,
				Column: col,
			}, nil
		}
	}
	return Operation{}, errNoOperation
}

func isNameStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isNamePart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

// vars decodes the variables object into a flat string-keyed map.
func (r *Request) vars() map[string]any {
	out := map[string]any{}
	if len(r.Variables) > 0 {
		_ = json.Unmarshal(r.Variables, &out)
	}
	return out
}

func strVar(vars map[string]any, key string) string {
	if v, ok := vars[key].(string); ok {
		return v
	}
	return ""
}

func intVar(vars map[string]any, key string, def int) int {
	switch v := vars[key].(type) {
	case float64:
		return int(v)
	case string:
		n := 0
		for _, r := range strings.TrimSpace(v) {
			if r < '0' || r > '9' {
				return def
			}
			n = n*10 + int(r-'0')
		}
		if n == 0 {
			return def
		}
		return n
	default:
		return def
	}
}
