// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Plain scalars are resolved with the YAML 1.1 rules repository configs are
// usually written against: yes/no/on/off are booleans, a leading 0 means
// octal, and a float needs a dot.
var (
	nullPattern  = regexp.MustCompile(`^(?:~|null|Null|NULL|)$`)
	boolPattern  = regexp.MustCompile(`^(?:yes|Yes|YES|no|No|NO|true|True|TRUE|false|False|FALSE|on|On|ON|off|Off|OFF)$`)
	intPattern   = regexp.MustCompile(`^(?:[-+]?0b[0-1_]+|[-+]?0[0-7_]+|[-+]?(?:0|[1-9][0-9_]*)|[-+]?0x[0-9a-fA-F_]+|[-+]?[1-9][0-9_]*(?::[0-5]?[0-9])+)$`)
	floatPattern = regexp.MustCompile(`^(?:[-+]?[0-9][0-9_]*\.[0-9_]*(?:[eE][-+][0-9]+)?|\.[0-9_]+(?:[eE][-+][0-9]+)?|[-+]?[0-9][0-9_]*(?::[0-5]?[0-9])+\.[0-9_]*|[-+]?\.(?:inf|Inf|INF)|\.(?:nan|NaN|NAN))$`)
	datePattern  = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}(?:(?:[Tt]|[ \t]+)[0-9]{1,2}:[0-9]{2}:[0-9]{2}(?:\.[0-9]*)?(?:[ \t]*(?:Z|[-+][0-9]{1,2}(?::[0-9]{2})?))?)?$`)
)

var trueWords = map[string]bool{"yes": true, "true": true, "on": true}

// nodeDecoder turns a parsed yaml.Node tree into plain values: string, bool,
// int64, *big.Int, float64, time.Time, nil, []interface{} and
// map[string]interface{}.
type nodeDecoder struct {
	expanding map[*yaml.Node]bool
}

func newNodeDecoder() *nodeDecoder {
	return &nodeDecoder{expanding: map[*yaml.Node]bool{}}
}

func (d *nodeDecoder) value(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])
	case yaml.AliasNode:
		if d.expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: alias *%s refers to itself", n.Line, n.Value)
		}
		d.expanding[n.Alias] = true
		defer delete(d.expanding, n.Alias)
		return d.value(n.Alias)
	case yaml.SequenceNode:
		if err := checkTag(n); err != nil {
			return nil, err
		}
		out := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		if err := checkTag(n); err != nil {
			return nil, err
		}
		return d.mapping(n)
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
	}
}

// mapping keeps the last value of a repeated key. Merge keys (<<) supply
// defaults that the mapping's own keys override.
func (d *nodeDecoder) mapping(n *yaml.Node) (map[string]interface{}, error) {
	own := make(map[string]interface{}, len(n.Content)/2)
	var merged []map[string]interface{}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		if isMergeKey(key) {
			m, err := d.merge(val)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}

		k, err := d.key(key)
		if err != nil {
			return nil, err
		}
		v, err := d.value(val)
		if err != nil {
			return nil, err
		}
		own[k] = v
	}

	if len(merged) == 0 {
		return own, nil
	}

	// Earlier merge sources win over later ones.
	out := map[string]interface{}{}
	for i := len(merged) - 1; i >= 0; i-- {
		for k, v := range merged[i] {
			out[k] = v
		}
	}
	for k, v := range own {
		out[k] = v
	}
	return out, nil
}

func (d *nodeDecoder) merge(n *yaml.Node) ([]map[string]interface{}, error) {
	v, err := d.value(n)
	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{v}, nil
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(v))
		for _, e := range v {
			m, ok := e.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("line %d: expected a mapping for merging, but found %T", n.Line, e)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: expected a mapping or list of mappings for merging, but found %T", n.Line, v)
	}
}

// key renders a mapping key with the same rules as a value, so `1:` becomes
// "1" and `yes:` becomes "True". Collections cannot be keys.
func (d *nodeDecoder) key(n *yaml.Node) (string, error) {
	v, err := d.value(n)
	if err != nil {
		return "", err
	}
	switch v.(type) {
	case []interface{}, map[string]interface{}:
		return "", fmt.Errorf("line %d: found unhashable key", n.Line)
	case nil:
		return "None", nil
	}
	return stringify(v), nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Style == 0 && n.Value == "<<"
}

// checkTag rejects application tags such as !Ref. Only the standard !! tags
// have a known meaning.
func checkTag(n *yaml.Node) error {
	if n.Style&yaml.TaggedStyle == 0 {
		return nil
	}
	if tag := n.ShortTag(); !strings.HasPrefix(tag, "!!") {
		return fmt.Errorf("line %d: could not determine a constructor for the tag %s", n.Line, tag)
	}
	return nil
}

func scalar(n *yaml.Node) (interface{}, error) {
	if n.Style&yaml.TaggedStyle != 0 {
		if err := checkTag(n); err != nil {
			return nil, err
		}
		if n.ShortTag() == "!!str" {
			return n.Value, nil
		}
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	if n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return n.Value, nil
	}

	s := n.Value
	switch {
	case nullPattern.MatchString(s):
		return nil, nil
	case boolPattern.MatchString(s):
		return trueWords[strings.ToLower(s)], nil
	case intPattern.MatchString(s):
		return parseInt(s), nil
	case floatPattern.MatchString(s):
		return parseFloat(s), nil
	case datePattern.MatchString(s):
		var t time.Time
		if err := n.Decode(&t); err == nil {
			return t, nil
		}
	}
	return s, nil
}

// parseInt handles the 0b, 0x, leading-0 octal and base 60 forms. Values that
// overflow int64 are kept as *big.Int.
func parseInt(s string) interface{} {
	digits := strings.ReplaceAll(s, "_", "")
	neg := false
	if digits[0] == '-' || digits[0] == '+' {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	n := new(big.Int)
	ok := true
	switch {
	case digits == "0":
	case strings.HasPrefix(digits, "0b"):
		_, ok = n.SetString(digits[2:], 2)
	case strings.HasPrefix(digits, "0x"):
		_, ok = n.SetString(digits[2:], 16)
	case strings.HasPrefix(digits, "0"):
		_, ok = n.SetString(digits[1:], 8)
	case strings.Contains(digits, ":"):
		sixty := big.NewInt(60)
		for _, part := range strings.Split(digits, ":") {
			p, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				ok = false
				break
			}
			n.Mul(n, sixty).Add(n, big.NewInt(p))
		}
	default:
		_, ok = n.SetString(digits, 10)
	}
	if !ok {
		return s
	}

	if neg {
		n.Neg(n)
	}
	if n.IsInt64() {
		return n.Int64()
	}
	return n
}

func parseFloat(s string) interface{} {
	v := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	sign := 1.0
	switch v[0] {
	case '-':
		sign = -1
		v = v[1:]
	case '+':
		v = v[1:]
	}

	switch {
	case v == ".inf":
		return sign * math.Inf(1)
	case v == ".nan":
		return math.NaN()
	case strings.Contains(v, ":"):
		var f float64
		for _, part := range strings.Split(v, ":") {
			p, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return s
			}
			f = f*60 + p
		}
		return sign * f
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return s
	}
	return sign * f
}
