package validation

// Validator checks a decoded request struct against its `validate` tags.
// A nil map means the struct is valid; otherwise it maps each offending
// json field name to a human-readable message.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
