package usecase

import "strings"

// requireText rejects a blank value for a required field.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field}
	}
	return nil
}

// optionalText rejects a field that is present but blank.
func optionalText(field string, value *string) error {
	if value == nil {
		return nil
	}
	return requireText(field, *value)
}
