package catalog

import (
	"errors"
	"reflect"
	"testing"
)

const codeRelayEntry = `{
	"name": "code-relay",
	"git": "https://github.com/code-relay-cli/code-relay",
	"desc": "A command line tool that recommends GitHub repos that want help.",
	"languages": ["python"],
	"frameworks": ["click"],
	"task": {
		"desc": "Make the code more concise/readable.",
		"file": "coderelay.py"
	},
	"setup": {
		"setup": "source venv/bin/activate",
		"installation": "python -m pip install -r dev-requirements.txt",
		"build": "pip3 install --upgrade --editable .",
		"use": "coderelay --help"
	}
}`

func TestLoad(t *testing.T) {
	c, err := Load([]byte("[" + codeRelayEntry + "]"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}

	entry, ok := c.Find("code-relay")
	if !ok {
		t.Fatal("Find did not return the code-relay entry")
	}
	if entry.Git != "https://github.com/code-relay-cli/code-relay" {
		t.Errorf("unexpected git url %q", entry.Git)
	}
	if entry.Task.File != "coderelay.py" {
		t.Errorf("unexpected task file %q", entry.Task.File)
	}
	if !reflect.DeepEqual(entry.Languages, []string{"python"}) {
		t.Errorf("unexpected languages %v", entry.Languages)
	}

	if _, ok := c.Find("SBQuery"); ok {
		t.Error("Find returned an entry for a name that is not in the catalog")
	}
}

func TestLoadKeepsOrder(t *testing.T) {
	doc := `[
		{"name": "b", "git": "https://example.com/b", "desc": "b", "languages": ["go"], "task": {"desc": "t", "file": "f"}, "setup": {}},
		{"name": "a", "git": "https://example.com/a", "desc": "a", "languages": ["go"], "task": {"desc": "t", "file": "f"}, "setup": {}},
		{"name": "c", "git": "https://example.com/c", "desc": "c", "languages": ["go"], "task": {"desc": "t", "file": "f"}, "setup": {}}
	]`
	c, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var names []string
	for _, entry := range c.Entries() {
		names = append(names, entry.Name)
	}
	if !reflect.DeepEqual(names, []string{"b", "a", "c"}) {
		t.Errorf("entries not in document order: %v", names)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	doc := []byte("[" + codeRelayEntry + "]")
	first, err := Load(doc)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := Load(doc)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if !reflect.DeepEqual(first.Entries(), second.Entries()) {
		t.Error("two loads of the same document differ")
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := Load([]byte("not json at all"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}

	// a valid JSON document that is not an array is just as useless
	_, err = Load([]byte(`{"name": "code-relay"}`))
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError for non-array input, got %v", err)
	}
}

func TestLoadMissingField(t *testing.T) {
	doc := `[{
		"git": "https://github.com/code-relay-cli/code-relay",
		"desc": "d",
		"languages": ["python"],
		"task": {"desc": "t", "file": "f"},
		"setup": {}
	}]`
	_, err := Load([]byte(doc))

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Index != 0 || schemaErr.Field != "name" || schemaErr.Expected != "" {
		t.Errorf("unexpected error details: %+v", schemaErr)
	}
}

func TestLoadDuplicateName(t *testing.T) {
	entry := `{"name": "code-relay", "git": "https://example.com", "desc": "d", "languages": ["python"], "task": {"desc": "t", "file": "f"}, "setup": {}}`
	_, err := Load([]byte("[" + entry + "," + entry + "]"))

	var dupErr *DuplicateNameError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if dupErr.Name != "code-relay" {
		t.Errorf("unexpected name %q", dupErr.Name)
	}
}

func TestLoadWrongShape(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		field    string
		expected string
	}{
		{
			name:     "languages as plain string",
			doc:      `[{"name": "x", "git": "g", "desc": "d", "languages": "python", "task": {"desc": "t", "file": "f"}, "setup": {}}]`,
			field:    "languages",
			expected: "a sequence of strings",
		},
		{
			name:     "task as string",
			doc:      `[{"name": "x", "git": "g", "desc": "d", "languages": ["python"], "task": "do it", "setup": {}}]`,
			field:    "task",
			expected: `an object with "desc" and "file"`,
		},
		{
			name:     "setup value not a string",
			doc:      `[{"name": "x", "git": "g", "desc": "d", "languages": ["python"], "task": {"desc": "t", "file": "f"}, "setup": {"build": ["make"]}}]`,
			field:    "setup",
			expected: "a mapping of step names to commands",
		},
		{
			name:     "name not a string",
			doc:      `[{"name": 42, "git": "g", "desc": "d", "languages": ["python"], "task": {"desc": "t", "file": "f"}, "setup": {}}]`,
			field:    "name",
			expected: "a string",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load([]byte(test.doc))
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if schemaErr.Field != test.field || schemaErr.Expected != test.expected {
				t.Errorf("unexpected error details: %+v", schemaErr)
			}
		})
	}
}

func TestLoadEmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "empty desc",
			doc:   `[{"name": "x", "git": "g", "desc": "", "languages": ["python"], "task": {"desc": "t", "file": "f"}, "setup": {}}]`,
			field: "desc",
		},
		{
			name:  "empty languages",
			doc:   `[{"name": "x", "git": "g", "desc": "d", "languages": [], "task": {"desc": "t", "file": "f"}, "setup": {}}]`,
			field: "languages",
		},
		{
			name:  "empty task file",
			doc:   `[{"name": "x", "git": "g", "desc": "d", "languages": ["python"], "task": {"desc": "t", "file": ""}, "setup": {}}]`,
			field: "task.file",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load([]byte(test.doc))
			var emptyErr *EmptyValueError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("expected EmptyValueError, got %v", err)
			}
			if emptyErr.Field != test.field {
				t.Errorf("unexpected field %q", emptyErr.Field)
			}
		})
	}
}

func TestLoadToleratesUnknownKeys(t *testing.T) {
	doc := `[{
		"name": "x", "git": "g", "desc": "d", "languages": ["python"],
		"task": {"desc": "t", "file": "f"}, "setup": {},
		"stars": 1234, "maintainer": "somebody"
	}]`
	c, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("unknown entry keys should be ignored, got %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestLoadMissingFrameworksIsFine(t *testing.T) {
	doc := `[{"name": "x", "git": "g", "desc": "d", "languages": ["python"], "task": {"desc": "t", "file": "f"}, "setup": {}}]`
	c, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	entry, _ := c.Find("x")
	if len(entry.Frameworks) != 0 {
		t.Errorf("expected no frameworks, got %v", entry.Frameworks)
	}
}
