package types

// Category represents service categories
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryMath       Category = "math"
)

// Service describes an engine capability and the tools it exposes
type Service struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Category     Category `json:"category" yaml:"category"`
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	Tools        []Tool   `json:"tools" yaml:"tools"`
}

// Tool represents a single dispatchable operation
type Tool struct {
	ID          string      `json:"id" yaml:"id"`
	Tag         string      `json:"tag" yaml:"tag"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Returns     string      `json:"returns" yaml:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// Arity returns the number of required and total parameters
func (t Tool) Arity() (required, total int) {
	for _, p := range t.Parameters {
		if p.Required {
			required++
		}
	}
	return required, len(t.Parameters)
}

// FindTool looks up a tool by its dispatch tag
func (s Service) FindTool(tag string) (Tool, bool) {
	for _, t := range s.Tools {
		if t.Tag == tag {
			return t, true
		}
	}
	return Tool{}, false
}
