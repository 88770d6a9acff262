// Package rules holds the field-pattern library as declarative
// configuration. The rule document is embedded at build time and parsed
// once; the resulting library is read-only, so extraction never mutates
// shared state.
package rules

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/sigortech/docuscan/internal/core/domain"
)

//go:embed rules.yaml
var defaultRules []byte

// ValueKind tells the extractor which normalizer and sanity filter apply
// to a captured value.
type ValueKind string

const (
	KindText         ValueKind = "text"
	KindName         ValueKind = "name"
	KindCompany      ValueKind = "company"
	KindPolicyNumber ValueKind = "policy_number"
	KindDate         ValueKind = "date"
	KindCurrency     ValueKind = "currency"
	KindTCNumber     ValueKind = "tc_number"
	KindPhone        ValueKind = "phone"
	KindPlate        ValueKind = "plate"
	KindAddress      ValueKind = "address"
)

var knownKinds = map[ValueKind]bool{
	KindText: true, KindName: true, KindCompany: true, KindPolicyNumber: true,
	KindDate: true, KindCurrency: true, KindTCNumber: true, KindPhone: true,
	KindPlate: true, KindAddress: true,
}

// Rule binds one canonical field to an ordered pattern cascade. Each
// pattern must contain exactly one capture group.
type Rule struct {
	Field    string
	Kind     ValueKind
	Patterns []*regexp.Regexp
}

// Library is the compiled, immutable rule set.
type Library struct {
	common []Rule
	byType map[domain.DocumentType][]Rule
}

type ruleSpec struct {
	Field    string   `yaml:"field"`
	Kind     string   `yaml:"kind"`
	Patterns []string `yaml:"patterns"`
}

type ruleFile struct {
	Common []ruleSpec            `yaml:"common"`
	Types  map[string][]ruleSpec `yaml:"types"`
}

// Load compiles the embedded rule document.
func Load() (*Library, error) {
	return Parse(defaultRules)
}

// Parse compiles a rule document from raw YAML.
func Parse(raw []byte) (*Library, error) {
	var file ruleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal rule document: %w", err)
	}

	common, err := compileRules("common", file.Common)
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.DocumentType][]Rule, len(file.Types))
	for typeName, specs := range file.Types {
		compiled, err := compileRules(typeName, specs)
		if err != nil {
			return nil, err
		}
		byType[domain.DocumentType(typeName)] = compiled
	}

	return &Library{common: common, byType: byType}, nil
}

func compileRules(section string, specs []ruleSpec) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		if spec.Field == "" {
			return nil, fmt.Errorf("rules[%s][%d]: missing field name", section, i)
		}
		kind := ValueKind(spec.Kind)
		if !knownKinds[kind] {
			return nil, fmt.Errorf("rules[%s][%d] %s: unknown kind %q", section, i, spec.Field, spec.Kind)
		}
		if len(spec.Patterns) == 0 {
			return nil, fmt.Errorf("rules[%s][%d] %s: no patterns", section, i, spec.Field)
		}
		patterns := make([]*regexp.Regexp, 0, len(spec.Patterns))
		for _, p := range spec.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("rules[%s] %s: compile %q: %w", section, spec.Field, p, err)
			}
			if re.NumSubexp() != 1 {
				return nil, fmt.Errorf("rules[%s] %s: pattern %q must have exactly one capture group", section, spec.Field, p)
			}
			patterns = append(patterns, re)
		}
		rules = append(rules, Rule{Field: spec.Field, Kind: kind, Patterns: patterns})
	}
	return rules, nil
}

// ForType returns the rule cascade for a document type: shared rules
// first, then type-specific ones. The returned slice is a copy.
func (l *Library) ForType(docType domain.DocumentType) []Rule {
	typed := l.byType[docType]
	out := make([]Rule, 0, len(l.common)+len(typed))
	out = append(out, l.common...)
	out = append(out, typed...)
	return out
}
