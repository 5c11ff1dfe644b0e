package urpx

import "encoding/json"

// Document is the parsed form of a .urpx project file. Only the fields
// the converter reads are modeled; everything else in the file is
// ignored.
type Document struct {
	Application Application `json:"application"`
	Program     Program     `json:"program"`
}

// Application holds the project-level metadata and the embedded script.
type Application struct {
	ApplicationInfo ApplicationInfo `json:"applicationInfo"`
	URScript        URScript        `json:"urscript"`
}

// ApplicationInfo carries the program's declared name. Name is a
// pointer so an absent field can be told apart from an empty one.
type ApplicationInfo struct {
	Name *string `json:"name"`
}

// URScript wraps the multi-line robot-script body. The script is
// opaque text; it is never validated or interpreted.
type URScript struct {
	Script string `json:"script"`
}

// Program holds the variable declarations and the program content tree.
type Program struct {
	VariableDeclarations []VariableDeclaration `json:"variableDeclarations"`
	ProgramContent       ProgramContent        `json:"programContent"`
}

// VariableDeclaration is one entry of program.variableDeclarations.
type VariableDeclaration struct {
	Name *string `json:"name"`
}

// ProgramContent holds the top-level program nodes.
type ProgramContent struct {
	Children []*Node `json:"children"`
}

// ParseDocument decodes a .urpx file body. Unrecognized fields are
// ignored; missing fields leave their zero values, which every
// downstream transform treats as empty rather than as an error.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
