package urpx

import (
	"bytes"
	"encoding/json"
)

// Node is one entry in the project's hierarchical program description.
// Every field is optional; a node with none of them set still resolves
// to a printable label.
type Node struct {
	ProgramLabel    ProgramLabel     `json:"programLabel"`
	ContributedNode *ContributedNode `json:"contributedNode"`
	Children        []*Node          `json:"children"`
}

// ContributedNode carries the node's contributed type identifier,
// e.g. "ur-move".
type ContributedNode struct {
	Type string `json:"type"`
}

// LabelFragment is one element of a fragment-list label. A fragment
// contributes either a literal value or a translation key; Value is
// raw JSON so presence is distinguishable from absence and non-string
// values keep a printable form.
type LabelFragment struct {
	Value          json.RawMessage `json:"value"`
	TranslationKey string          `json:"translationKey"`
}

type labelKind int

const (
	labelNone labelKind = iota
	labelText
	labelFragments
)

// ProgramLabel is the heterogeneous programLabel field: a plain
// string, an ordered fragment list, or absent. It is a tagged variant;
// the kind decides which resolver strategy applies.
type ProgramLabel struct {
	kind      labelKind
	text      string
	fragments []LabelFragment
}

// TextLabel returns a label that resolves to the given literal text.
// Used for synthetic outline nodes.
func TextLabel(s string) ProgramLabel {
	return ProgramLabel{kind: labelText, text: s}
}

// UnmarshalJSON accepts a string, a fragment array, or null. Any other
// JSON shape carries no label information and decodes to the absent
// variant rather than failing the whole document.
func (l *ProgramLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = ProgramLabel{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = ProgramLabel{kind: labelText, text: s}
	case '[':
		var frags []LabelFragment
		if err := json.Unmarshal(data, &frags); err != nil {
			return err
		}
		*l = ProgramLabel{kind: labelFragments, fragments: frags}
	default:
		*l = ProgramLabel{}
	}
	return nil
}
