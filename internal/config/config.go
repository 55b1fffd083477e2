// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frontendcfg/frontendcfg/internal/log"
)

// ParseError reports that non-empty config text was not valid YAML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse YAML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errMultipleDocuments is returned when the stream holds more than one YAML
// document. Only a single repository config document is accepted.
var errMultipleDocuments = errors.New("expected a single document in the stream but found another document")

// Document is the parsed repository config.
//
// Data is kept as map[string]interface{} since the document shape is
// untrusted. A document whose root is not a mapping yields a nil Data, which
// every lookup treats as empty.
type Document struct {
	Data map[string]interface{}
}

// Parse decodes text as a single YAML document. A stream with no document at
// all (e.g. only comments) yields an empty Document. Repeated keys keep their
// last value.
func Parse(text string) (Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var node yaml.Node
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, &ParseError{Err: err}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errMultipleDocuments
		}
		return Document{}, &ParseError{Err: err}
	}

	root, err := newNodeDecoder().value(&node)
	if err != nil {
		return Document{}, &ParseError{Err: err}
	}

	data, ok := asMap(root)
	if !ok && root != nil {
		log.Debugf("config root is %T, not a mapping; treating as empty", root)
	}

	return Document{Data: data}, nil
}

// Map returns the mapping at the dotted key path kspec (e.g. "versions").
// The second return is false when the path is missing or does not hold a
// mapping.
func (d Document) Map(kspec string) (map[string]interface{}, bool) {
	val, ok := d.get(kspec)
	if !ok {
		return nil, false
	}
	return asMap(val)
}

// get traverses the document using a dotted key path and returns the raw
// value found there.
func (d Document) get(kspec string) (interface{}, bool) {
	var current interface{} = d.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// asMap reports whether v is a decoded mapping.
func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}
