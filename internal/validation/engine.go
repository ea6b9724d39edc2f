// Package validation evaluates a named operation's rule set against
// submitted fields. Rules run in declaration order; once a field has
// failed, its remaining rules are skipped, so a field surfaces at most
// one violation. Distinct fields may fail independently.
//
// A violation carries a machine key ("UserCreate.email_unique"); turning
// that into a human message is the response boundary's job, never this
// package's.
package validation

import "context"

type Violation struct {
	Field string
	// Key is "{Operation}.{ruleId}", stable across display languages.
	Key string
}

type Violations []Violation

// First returns the violation recorded for field, if any.
func (vs Violations) First(field string) (Violation, bool) {
	for _, v := range vs {
		if v.Field == field {
			return v, true
		}
	}
	return Violation{}, false
}

func (vs Violations) Fields() []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

// Rule checks one predicate against one field. Check returns whether the
// rule passes; an error aborts validation entirely (infrastructure
// failure, not a violation).
type Rule struct {
	Field string
	ID    string
	Check func(ctx context.Context) (bool, error)
}

// RuleSet is the ordered rule sequence of one named operation.
type RuleSet struct {
	Operation string
	Rules     []Rule
}

func New(operation string) *RuleSet {
	return &RuleSet{Operation: operation}
}

func (s *RuleSet) Add(field, id string, check func(ctx context.Context) (bool, error)) *RuleSet {
	s.Rules = append(s.Rules, Rule{Field: field, ID: id, Check: check})
	return s
}

func (s *RuleSet) Validate(ctx context.Context) (Violations, error) {
	failed := make(map[string]bool, 4)
	var out Violations
	for _, r := range s.Rules {
		if failed[r.Field] {
			continue
		}
		ok, err := r.Check(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			failed[r.Field] = true
			out = append(out, Violation{Field: r.Field, Key: s.Operation + "." + r.ID})
		}
	}
	return out, nil
}
