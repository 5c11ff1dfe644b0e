package urpx

import "strings"

const (
	// AnonVariable labels a variable declaration with no name field.
	AnonVariable = "<anon>"

	// functionsContainerType marks the node that wraps the main
	// program body inside program.programContent.children.
	functionsContainerType = "ur-functions"

	outlineRootLabel      = "Program"
	variablesSectionLabel = "Variables Setup"
	programSectionLabel   = "Robot Program"
)

// BuildOutline reshapes a document into the two-section outline tree:
// a synthetic root holding a Variables Setup section (one leaf per
// declared variable) and a Robot Program section (the main program
// body nodes, unmodified). Missing fields at any level shrink the
// outline; they never fail it.
func BuildOutline(doc *Document) *Node {
	vars := &Node{ProgramLabel: TextLabel(variablesSectionLabel)}
	body := &Node{ProgramLabel: TextLabel(programSectionLabel)}
	if doc != nil {
		for _, v := range doc.Program.VariableDeclarations {
			name := AnonVariable
			if v.Name != nil {
				name = *v.Name
			}
			vars.Children = append(vars.Children, &Node{ProgramLabel: TextLabel(name)})
		}
		body.Children = mainProgramBody(doc)
	}
	return &Node{
		ProgramLabel: TextLabel(outlineRootLabel),
		Children:     []*Node{vars, body},
	}
}

// mainProgramBody locates the first functions container among the
// top-level program nodes and returns its first child's children. Any
// missing link yields an empty body.
func mainProgramBody(doc *Document) []*Node {
	for _, n := range doc.Program.ProgramContent.Children {
		if n == nil || n.ContributedNode == nil || n.ContributedNode.Type != functionsContainerType {
			continue
		}
		if len(n.Children) == 0 || n.Children[0] == nil {
			return nil
		}
		return n.Children[0].Children
	}
	return nil
}

// RenderOutline builds the outline tree, flattens it, and joins the
// lines into the final .txt body.
func RenderOutline(doc *Document) (string, error) {
	lines, err := Flatten(BuildOutline(doc))
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
