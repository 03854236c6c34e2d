package models

// StructuredResume is the fixed six-field record the oracle is asked to
// return for every resume. All six keys must be present in the reply;
// empty values are acceptable.
type StructuredResume struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}
