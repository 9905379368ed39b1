package catalog

import "fmt"

// ParseError gets returned when the catalog text is not valid JSON at all
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "catalog is not valid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError gets returned when an entry is structurally valid JSON
// but a field is missing or has the wrong shape. Expected is empty
// when the field is missing entirely
type SchemaError struct {
	Index    int
	Field    string
	Expected string
}

func (e *SchemaError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("entry %d: missing required field %q", e.Index, e.Field)
	}
	if e.Field == "" {
		return fmt.Sprintf("entry %d: must be %s", e.Index, e.Expected)
	}
	return fmt.Sprintf("entry %d: field %q must be %s", e.Index, e.Field, e.Expected)
}

// EmptyValueError gets returned when a required field is present but empty
type EmptyValueError struct {
	Index int
	Field string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("entry %d: field %q must not be empty", e.Index, e.Field)
}

// DuplicateNameError gets returned when two entries share a name
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate entry name %q", e.Name)
}
