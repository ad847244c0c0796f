package types

// Filter represents query parameters for filtering list endpoints.
type Filter struct {
	Search string                 `json:"search,omitempty"`
	Filter map[string]interface{} `json:"filter,omitempty"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// Get returns the raw filter value as a string, or "" when absent.
func (f Filter) Get(key string) string {
	if v, ok := f.Filter[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// http://localhost:3001/api/equipment?search=lathe&filter[category]=CNC&filter[is_usable]=true
