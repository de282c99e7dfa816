// Package inspect pulls individual fields out of an account snapshot with JSONPath,
// for `bankcore accounts show --field`.
package inspect

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/bankcore/internal/account"
)

// Rules maps an output name to a JSONPath expression.
type Rules map[string]string

// Values holds the fields that resolved.
type Values map[string]string

type Result struct {
	Name    string
	Success bool
	Message string
}

// ParseRules reads "name=$.path" pairs. A bare path is named after itself.
func ParseRules(pairs []string) (Rules, error) {
	rules := Rules{}
	for _, p := range pairs {
		name, expr, ok := strings.Cut(p, "=")
		if !ok {
			name, expr = p, p
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("field %q: empty name", p)
		}
		rules[name] = expr
	}
	return rules, nil
}

// Account evaluates rules against the account's JSON snapshot.
func Account(acc account.Account, rules Rules) (Values, []Result, error) {
	body, err := json.Marshal(acc.Snapshot())
	if err != nil {
		return nil, nil, err
	}
	vals, res := Apply(body, rules)
	return vals, res, nil
}

// Apply evaluates rules against a JSON document.
//
// A rule that fails is reported in its Result; other rules still run.
// Results are sorted by name.
func Apply(body []byte, rules Rules) (Values, []Result) {
	if len(rules) == 0 {
		return Values{}, []Result{}
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		out := make([]Result, 0, len(keys))
		for _, name := range keys {
			out = append(out, Result{
				Name:    name,
				Message: fmt.Sprintf("field %q: document is not valid JSON", name),
			})
		}
		return Values{}, out
	}

	vals := Values{}
	results := make([]Result, 0, len(keys))

	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		s, err := eval(doc, expr)
		if err != nil {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("field %q (%s): %v", name, expr, err),
			})
			continue
		}
		vals[name] = s
		results = append(results, Result{Name: name, Success: true, Message: fmt.Sprintf("resolved %q", name)})
	}

	return vals, results
}

func eval(doc any, expr string) (string, error) {
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("jsonpath error: %w", err)
	}
	if isEmptyValue(val) {
		return "", fmt.Errorf("no value found")
	}
	return toString(val)
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath returns a slice for wildcard and index access
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
