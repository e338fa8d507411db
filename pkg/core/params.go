package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single read-only value exposed for diagnostics.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures a set of values at one point in time.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the value stored under key in any group.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}
