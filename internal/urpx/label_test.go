package urpx

import (
	"encoding/json"
	"testing"
)

// nodeFromJSON decodes a single program node literal.
func nodeFromJSON(t *testing.T, src string) *Node {
	t.Helper()
	var n Node
	if err := json.Unmarshal([]byte(src), &n); err != nil {
		t.Fatalf("unmarshal node: %v", err)
	}
	return &n
}

func TestResolve_StringLabel(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `{"programLabel": "Move to Home"}`, "Move to Home"},
		{"trimmed", `{"programLabel": "  Wait 2s  "}`, "Wait 2s"},
		{"blank falls through", `{"programLabel": "   "}`, LabelUnknown},
		{"empty falls through", `{"programLabel": ""}`, LabelUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(nodeFromJSON(t, tt.src)); got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_FragmentLabel(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"value fragments",
			`{"programLabel": [{"value": "Set"}, {"value": "speed"}]}`,
			"Set speed",
		},
		{
			"translation keys become title-cased words",
			`{"programLabel": [{"translationKey": "program-node-label.move.joint"}]}`,
			"Move Joint",
		},
		{
			"multiple translation keys in order",
			`{"programLabel": [{"translationKey": "program-node-label.wait"}, {"translationKey": "program-node-label.until.digital.input"}]}`,
			"Wait Until Digital Input",
		},
		{
			"unprefixed key still humanized",
			`{"programLabel": [{"translationKey": "gripper.close"}]}`,
			"Gripper Close",
		},
		{
			"mixed value and key",
			`{"programLabel": [{"value": "If"}, {"translationKey": "program-node-label.digital.input"}]}`,
			"If Digital Input",
		},
		{
			"value wins over key on one fragment",
			`{"programLabel": [{"value": "Loop", "translationKey": "program-node-label.ignored"}]}`,
			"Loop",
		},
		{
			"non-string value keeps its JSON form",
			`{"programLabel": [{"value": "Repeat"}, {"value": 3}]}`,
			"Repeat 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(nodeFromJSON(t, tt.src)); got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_ContributedType(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"ur prefix stripped", `{"contributedNode": {"type": "ur-move-joint"}}`, "Move Joint"},
		{"single word", `{"contributedNode": {"type": "ur-wait"}}`, "Wait"},
		{"no ur prefix", `{"contributedNode": {"type": "set-payload"}}`, "Set Payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(nodeFromJSON(t, tt.src)); got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_EmptyFragmentsFallThrough(t *testing.T) {
	// Fragments that contribute no text must fall through to the
	// contributed type, not stop at an empty join.
	src := `{"programLabel": [], "contributedNode": {"type": "ur-move-linear"}}`
	if got := Resolve(nodeFromJSON(t, src)); got != "Move Linear" {
		t.Errorf("Resolve = %q, want %q", got, "Move Linear")
	}

	src = `{"programLabel": [{"other": 1}], "contributedNode": {"type": "ur-halt"}}`
	if got := Resolve(nodeFromJSON(t, src)); got != "Halt" {
		t.Errorf("Resolve = %q, want %q", got, "Halt")
	}
}

func TestResolve_Sentinel(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty node", `{}`},
		{"null label", `{"programLabel": null}`},
		{"empty contributed node", `{"contributedNode": {}}`},
		{"label of unexpected shape", `{"programLabel": 42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(nodeFromJSON(t, tt.src)); got != LabelUnknown {
				t.Errorf("Resolve = %q, want %q", got, LabelUnknown)
			}
		})
	}
}

func TestResolve_NilNode(t *testing.T) {
	if got := Resolve(nil); got != LabelUnknown {
		t.Errorf("Resolve(nil) = %q, want %q", got, LabelUnknown)
	}
}
