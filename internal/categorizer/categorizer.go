// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package categorizer assigns hiring stages to statistic categories by
// matching their names against keyword lists.
package categorizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category is a statistic bucket for stages.
type Category string

const (
	CategoryDocument   Category = "document"
	CategoryCodingTest Category = "codingTest"
	CategoryAssignment Category = "assignment"
	CategoryInterview  Category = "interview"
)

// Categories lists every known category in report order.
var Categories = []Category{
	CategoryDocument,
	CategoryCodingTest,
	CategoryAssignment,
	CategoryInterview,
}

// DefaultKeywords returns a fresh copy of the built-in keyword map.
func DefaultKeywords() map[Category][]string {
	return map[Category][]string{
		CategoryDocument:   {"서류", "지원서", "자기소개서", "자소서", "document", "resume"},
		CategoryCodingTest: {"코딩테스트", "코테", "알고리즘", "codingtest"},
		CategoryAssignment: {"과제", "assignment", "take-home"},
		CategoryInterview:  {"면접", "인터뷰", "interview"},
	}
}

// Categorizer matches stage names against normalized keywords. It is safe
// for concurrent use.
type Categorizer struct {
	keywords map[Category][]string
}

// New builds a Categorizer from the defaults. A category present in
// overrides replaces its default keywords; unknown category names and
// blank keywords are ignored.
func New(overrides map[string][]string) *Categorizer {
	merged := DefaultKeywords()
	for _, category := range Categories {
		if words, ok := overrides[string(category)]; ok {
			merged[category] = words
		}
	}

	c := &Categorizer{keywords: make(map[Category][]string, len(merged))}
	for category, words := range merged {
		normalized := make([]string, 0, len(words))
		for _, word := range words {
			if n := Normalize(word); n != "" {
				normalized = append(normalized, n)
			}
		}
		c.keywords[category] = normalized
	}

	return c
}

// Matches reports whether the normalized stage name contains any keyword
// of category.
func (c *Categorizer) Matches(category Category, stageName string) bool {
	return c.matchesNormalized(category, Normalize(stageName))
}

// Categorize returns every category whose keywords match stageName, in
// [Categories] order.
func (c *Categorizer) Categorize(stageName string) []Category {
	name := Normalize(stageName)

	var matched []Category
	for _, category := range Categories {
		if c.matchesNormalized(category, name) {
			matched = append(matched, category)
		}
	}
	return matched
}

func (c *Categorizer) matchesNormalized(category Category, name string) bool {
	if name == "" {
		return false
	}
	for _, keyword := range c.keywords[category] {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// Normalize composes s to NFC, drops every white space rune and case-folds
// the rest, so "코딩 테스트" and "코딩테스트" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.White_Space)), cases.Fold())
	result, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(strings.Join(strings.Fields(s), ""))
	}
	return result
}
