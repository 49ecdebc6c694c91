package glue

import "slices"

// OperationInfo describes one modeled operation.
type OperationInfo struct {
	Name   string   `json:"name" yaml:"name"`
	Input  string   `json:"input" yaml:"input"`
	Output string   `json:"output" yaml:"output"`
	Errors []string `json:"errors" yaml:"errors"`
}

// Operations returns every modeled operation sorted by name.
func Operations() []OperationInfo {
	out := make([]OperationInfo, len(operations))
	for i, op := range operations {
		op.Errors = slices.Clone(op.Errors)
		out[i] = op
	}
	return out
}

// LookupOperation returns the operation called name.
func LookupOperation(name string) (OperationInfo, bool) {
	for _, op := range operations {
		if op.Name == name {
			op.Errors = slices.Clone(op.Errors)
			return op, true
		}
	}
	return OperationInfo{}, false
}
