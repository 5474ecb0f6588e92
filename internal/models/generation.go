package models

// EnhancementOption selects one extra section of an enhanced prompt.
type EnhancementOption string

const (
	EnhancementClarity      EnhancementOption = "clarity"
	EnhancementContext      EnhancementOption = "context"
	EnhancementExamples     EnhancementOption = "examples"
	EnhancementStructure    EnhancementOption = "structure"
	EnhancementConstraints  EnhancementOption = "constraints"
	EnhancementOutputFormat EnhancementOption = "output-format"
)

// EnhancementOptions is also the order sections appear in the output.
var EnhancementOptions = []EnhancementOption{
	EnhancementClarity,
	EnhancementContext,
	EnhancementExamples,
	EnhancementStructure,
	EnhancementConstraints,
	EnhancementOutputFormat,
}

func (o EnhancementOption) Valid() bool {
	switch o {
	case EnhancementClarity, EnhancementContext, EnhancementExamples,
		EnhancementStructure, EnhancementConstraints, EnhancementOutputFormat:
		return true
	}
	return false
}

func (o EnhancementOption) Label() string {
	switch o {
	case EnhancementClarity:
		return "Improve Clarity"
	case EnhancementContext:
		return "Add Context"
	case EnhancementExamples:
		return "Add Examples"
	case EnhancementStructure:
		return "Better Structure"
	case EnhancementConstraints:
		return "Add Constraints"
	case EnhancementOutputFormat:
		return "Output Format"
	}
	return string(o)
}

func (o EnhancementOption) Description() string {
	switch o {
	case EnhancementClarity:
		return "Make instructions clearer and more precise"
	case EnhancementContext:
		return "Include relevant background information"
	case EnhancementExamples:
		return "Include practical examples and use cases"
	case EnhancementStructure:
		return "Organize content with clear sections"
	case EnhancementConstraints:
		return "Include helpful limitations and guidelines"
	case EnhancementOutputFormat:
		return "Specify desired response format"
	}
	return ""
}

// DiagramType is the Mermaid diagram family to generate.
type DiagramType string

const (
	DiagramFlowchart DiagramType = "flowchart"
	DiagramSequence  DiagramType = "sequence"
	DiagramClass     DiagramType = "class"
	DiagramState     DiagramType = "state"
	DiagramER        DiagramType = "er"
	DiagramGantt     DiagramType = "gantt"
	DiagramPie       DiagramType = "pie"
	DiagramGitGraph  DiagramType = "gitgraph"
	DiagramOther     DiagramType = "other"
)

var DiagramTypes = []DiagramType{
	DiagramFlowchart,
	DiagramSequence,
	DiagramClass,
	DiagramState,
	DiagramER,
	DiagramGantt,
	DiagramPie,
	DiagramGitGraph,
	DiagramOther,
}

func (d DiagramType) Valid() bool {
	switch d {
	case DiagramFlowchart, DiagramSequence, DiagramClass, DiagramState,
		DiagramER, DiagramGantt, DiagramPie, DiagramGitGraph, DiagramOther:
		return true
	}
	return false
}

func (d DiagramType) Label() string {
	switch d {
	case DiagramFlowchart:
		return "Flowchart"
	case DiagramSequence:
		return "Sequence Diagram"
	case DiagramClass:
		return "Class Diagram"
	case DiagramState:
		return "State Diagram"
	case DiagramER:
		return "Entity Relationship"
	case DiagramGantt:
		return "Gantt Chart"
	case DiagramPie:
		return "Pie Chart"
	case DiagramGitGraph:
		return "Git Graph"
	case DiagramOther:
		return "Other"
	}
	return string(d)
}

func (d DiagramType) Description() string {
	switch d {
	case DiagramFlowchart:
		return "Process flows and decision trees"
	case DiagramSequence:
		return "Interactions between objects over time"
	case DiagramClass:
		return "Object-oriented class relationships"
	case DiagramState:
		return "State transitions and behaviors"
	case DiagramER:
		return "Database relationships"
	case DiagramGantt:
		return "Project timelines and schedules"
	case DiagramPie:
		return "Data distribution visualization"
	case DiagramGitGraph:
		return "Git branch and merge visualization"
	case DiagramOther:
		return "Generic process outline"
	}
	return ""
}
