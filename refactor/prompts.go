/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package refactor

import "chainguard.dev/refactoraf/promptbuilder"

// systemInstructions is the system role sent with every completion.
const systemInstructions = "You are a helpful assistant."

// Roles prefixed to the user message, so the same model plays two parts in
// sequence: first critic, then rewriter.
const (
	smellFinderRole = "Design Smell Finder"
	refactorerRole  = "Refactoring Expert"
)

// smellChecklist is the fixed list of design smells and metrics the model
// is asked to evaluate.
var smellChecklist = []string{
	"Cyclomatic complexity",
	"Lines of code",
	"Method length",
	"Class coupling",
	"Number of parameters",
	"Depth of inheritance",
}

// smellPrompt asks for a design-smell and metrics summary of one file.
// The checklist is bound once here; {{code}} is bound per file.
var smellPrompt = promptbuilder.MustNewPrompt(`Analyze the following code for design smells and code quality metrics including:
{{checklist}}
List any issues found and provide recommendations for improvement:

{{code}}

Please provide a brief summary focusing on the most critical issues and metrics that exceed common thresholds.`).
	MustBindYAML("checklist", smellChecklist)

// rewritePrompt asks for a full-file rewrite addressing the detected
// smells. {{smells}} and {{code}} are bound per file.
var rewritePrompt = promptbuilder.MustNewPrompt(`Based on the following detected design smells:
{{smells}}

Refactor the code below to address these issues and improve code quality. Return only the complete new file content:

{{code}}`)

// codePayload wraps runtime text for XML binding, so file contents and
// model output can never be misread as prompt structure.
type codePayload struct {
	XMLName struct{} `xml:"code"`
	Content string   `xml:",chardata"`
}

type smellsPayload struct {
	XMLName struct{} `xml:"design_smells"`
	Content string   `xml:",chardata"`
}
