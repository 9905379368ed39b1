package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// errSetupShape gets returned (wrapped) when setup is not a flat
// string to string mapping
var errSetupShape = errors.New("not a mapping of string to string")

// Step is one named shell command of an entry's setup
type Step struct {
	Name    string
	Command string
}

// Setup is the ordered mapping of step names to shell commands.
// Step names are free-form ("setup", "installation", "build", "serve",
// "use" and whatever else a catalog author comes up with) and the set
// of steps varies per entry, so this is not a fixed struct. The order
// the source document lists the steps in is preserved, because that is
// the order they are meant to be run in.
type Setup struct {
	steps []Step
}

// NewSetup returns a Setup containing the given steps in order
func NewSetup(steps ...Step) Setup {
	return Setup{steps: steps}
}

// Steps returns all steps in document order
func (s *Setup) Steps() []Step {
	return s.steps
}

// Len returns the number of steps
func (s *Setup) Len() int {
	return len(s.steps)
}

// Get returns the command of the named step
func (s *Setup) Get(name string) (string, bool) {
	for _, step := range s.steps {
		if step.Name == name {
			return step.Command, true
		}
	}
	return "", false
}

// UnmarshalJSON decodes a JSON object token by token so the key order
// of the source document survives (a plain map would shuffle it)
func (s *Setup) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errSetupShape
	}

	steps := []Step{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		// inside an object this is always a string
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("step %q: %w", key, errSetupShape)
		}
		steps = append(steps, Step{Name: key, Command: val})
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	s.steps = steps
	return nil
}

// MarshalJSON writes the steps back as a JSON object in step order
func (s Setup) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, step := range s.steps {
		if i != 0 {
			buf.WriteString(",")
		}
		name, err := json.Marshal(step.Name)
		if err != nil {
			return nil, err
		}
		command, err := json.Marshal(step.Command)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteString(":")
		buf.Write(command)
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
