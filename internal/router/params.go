package router

// Param is one captured path parameter.
type Param struct {
	Key   string
	Value string
}

// Params are the parameters captured by a match, in the order they are
// declared in the pattern.
type Params []Param

// Get returns the value captured for key or an empty string.
func (p Params) Get(key string) string {
	for _, param := range p {
		if param.Key == key {
			return param.Value
		}
	}
	return ""
}

// Values returns the captured values in declaration order.
func (p Params) Values() []string {
	values := make([]string, len(p))
	for i, param := range p {
		values[i] = param.Value
	}
	return values
}
