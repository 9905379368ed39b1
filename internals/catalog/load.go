package catalog

import "encoding/json"

// required are the top-level keys every entry has to carry.
// Anything else on an entry is tolerated and ignored, so newer
// catalogs keep working with older clients
var required = []string{"name", "git", "desc", "languages", "task", "setup"}

// Load parses and validates a catalog document. It either returns the
// full catalog with the entries in document order or the first
// validation failure, never a partial result. The input is not
// normalized in any way.
func Load(data []byte) (*Catalog, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Err: err}
	}

	entries := make([]Entry, len(records))
	for i, record := range records {
		entry, err := decodeEntry(i, record)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	byName := make(map[string]int, len(entries))
	for i, entry := range entries {
		if _, taken := byName[entry.Name]; taken {
			return nil, &DuplicateNameError{Name: entry.Name}
		}
		byName[entry.Name] = i
	}

	return &Catalog{entries: entries, byName: byName}, nil
}

func decodeEntry(index int, record json.RawMessage) (Entry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return Entry{}, &SchemaError{Index: index, Expected: "an object"}
	}

	for _, field := range required {
		if _, ok := fields[field]; !ok {
			return Entry{}, &SchemaError{Index: index, Field: field}
		}
	}

	var entry Entry
	var err error

	if entry.Name, err = requiredString(index, "name", fields["name"]); err != nil {
		return Entry{}, err
	}
	if entry.Git, err = requiredString(index, "git", fields["git"]); err != nil {
		return Entry{}, err
	}
	if entry.Desc, err = requiredString(index, "desc", fields["desc"]); err != nil {
		return Entry{}, err
	}

	if err := json.Unmarshal(fields["languages"], &entry.Languages); err != nil {
		return Entry{}, &SchemaError{Index: index, Field: "languages", Expected: "a sequence of strings"}
	}
	if len(entry.Languages) == 0 {
		return Entry{}, &EmptyValueError{Index: index, Field: "languages"}
	}
	for _, lang := range entry.Languages {
		if lang == "" {
			return Entry{}, &EmptyValueError{Index: index, Field: "languages"}
		}
	}

	// frameworks is the one optional field. An entry without any
	// framework tags may leave it out or list nothing
	if raw, ok := fields["frameworks"]; ok {
		if err := json.Unmarshal(raw, &entry.Frameworks); err != nil {
			return Entry{}, &SchemaError{Index: index, Field: "frameworks", Expected: "a sequence of strings"}
		}
	}

	var taskFields map[string]json.RawMessage
	if err := json.Unmarshal(fields["task"], &taskFields); err != nil {
		return Entry{}, &SchemaError{Index: index, Field: "task", Expected: `an object with "desc" and "file"`}
	}
	for _, field := range []string{"desc", "file"} {
		if _, ok := taskFields[field]; !ok {
			return Entry{}, &SchemaError{Index: index, Field: "task." + field}
		}
	}
	if entry.Task.Desc, err = requiredString(index, "task.desc", taskFields["desc"]); err != nil {
		return Entry{}, err
	}
	if entry.Task.File, err = requiredString(index, "task.file", taskFields["file"]); err != nil {
		return Entry{}, err
	}

	if err := json.Unmarshal(fields["setup"], &entry.Setup); err != nil {
		return Entry{}, &SchemaError{Index: index, Field: "setup", Expected: "a mapping of step names to commands"}
	}

	return entry, nil
}

func requiredString(index int, field string, raw json.RawMessage) (string, error) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &SchemaError{Index: index, Field: field, Expected: "a string"}
	}
	if value == "" {
		return "", &EmptyValueError{Index: index, Field: field}
	}
	return value, nil
}
