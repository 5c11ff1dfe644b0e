package urpx

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

const (
	// LabelUnknown is returned when no resolver strategy produces text.
	LabelUnknown = "Unknown"

	translationKeyPrefix  = "program-node-label."
	contributedTypePrefix = "ur-"
)

// Resolve derives the display string for a node. Strategies are tried
// in order and the first one that yields non-empty text wins:
//
//  1. a non-blank string programLabel, trimmed;
//  2. a fragment-list programLabel, joined;
//  3. the contributedNode type, humanized;
//  4. the Unknown sentinel.
//
// Resolve never fails: a sparse node degrades to the sentinel.
func Resolve(n *Node) string {
	if n == nil {
		return LabelUnknown
	}
	if s, ok := n.ProgramLabel.literal(); ok {
		return s
	}
	if s, ok := n.ProgramLabel.joined(); ok {
		return s
	}
	if n.ContributedNode != nil && n.ContributedNode.Type != "" {
		t := strings.TrimPrefix(n.ContributedNode.Type, contributedTypePrefix)
		return titleCase(strings.ReplaceAll(t, "-", " "))
	}
	return LabelUnknown
}

// literal returns the trimmed string label, if this is a string label
// with visible content.
func (l ProgramLabel) literal() (string, bool) {
	if l.kind != labelText {
		return "", false
	}
	s := strings.TrimSpace(l.text)
	return s, s != ""
}

// joined renders a fragment list. Value fragments contribute their
// string form; translationKey fragments are stripped of the fixed
// prefix, de-dotted, and title-cased. Returns false when the fragments
// contribute no visible text, so resolution falls through to the
// contributed type rather than stopping early.
func (l ProgramLabel) joined() (string, bool) {
	if l.kind != labelFragments {
		return "", false
	}
	var parts []string
	for _, f := range l.fragments {
		switch {
		case f.Value != nil:
			parts = append(parts, rawString(f.Value))
		case f.TranslationKey != "":
			key := strings.TrimPrefix(f.TranslationKey, translationKeyPrefix)
			parts = append(parts, titleCase(strings.ReplaceAll(key, ".", " ")))
		}
	}
	s := strings.TrimSpace(strings.Join(parts, " "))
	return s, s != ""
}

// rawString renders a raw JSON value as display text: strings are
// unquoted, anything else keeps its compact JSON form.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// titleCase capitalizes the first letter of each space-separated word
// and lowercases the rest, preserving spacing.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
