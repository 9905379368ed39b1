package prefs

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/code-relay-cli/code-relay/internals/catalog"
)

func TestMatch(t *testing.T) {
	p := &Preferences{
		Languages:          []string{"python", "javascript"},
		Frameworks:         []string{"click"},
		ExcludedFrameworks: []string{"angular"},
	}

	tests := []struct {
		name       string
		languages  []string
		frameworks []string
		want       MatchKind
	}{
		{"known language and framework", []string{"python"}, []string{"click"}, MatchGood},
		{"no frameworks at all", []string{"python"}, nil, MatchGood},
		{"unknown framework", []string{"javascript"}, []string{"svelte"}, MatchNewFramework},
		{"excluded framework", []string{"javascript"}, []string{"angular"}, MatchExcludedFramework},
		{"excluded beats unknown", []string{"javascript"}, []string{"svelte", "angular"}, MatchExcludedFramework},
		{"unknown language wins", []string{"rust"}, []string{"angular"}, MatchNewLanguage},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entry := &catalog.Entry{
				Name:       "x",
				Languages:  test.languages,
				Frameworks: test.frameworks,
			}
			if got := p.Match(entry); got != test.want {
				t.Errorf("got %q, want %q", got.Label(), test.want.Label())
			}
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := map[string]string{
		"Tailwind CSS": "tailwindcss",
		"Vue.js":       "vuejs",
		"click":        "click",
	}
	for input, want := range tests {
		if got := NormalizeTag(input); got != want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestAddTags(t *testing.T) {
	p := Default()

	if !p.AddLanguage("Python") {
		t.Error("AddLanguage rejected a new language")
	}
	if p.AddLanguage("python") {
		t.Error("AddLanguage took the same language twice")
	}
	if !reflect.DeepEqual(p.Languages, []string{"python"}) {
		t.Errorf("unexpected languages %v", p.Languages)
	}

	p.AddFramework("Tailwind CSS")
	if !reflect.DeepEqual(p.Frameworks, []string{"tailwindcss"}) {
		t.Errorf("framework name not normalized: %v", p.Frameworks)
	}

	p.ExcludeFramework("Angular")
	if !reflect.DeepEqual(p.ExcludedFrameworks, []string{"angular"}) {
		t.Errorf("unexpected excluded frameworks %v", p.ExcludedFrameworks)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coderelay", "coderelay.json")

	_, existed, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if existed {
		t.Error("LoadFrom reported a file that is not there")
	}

	p := &Preferences{
		Languages:          []string{"go"},
		Frameworks:         []string{},
		ExcludedFrameworks: []string{"angular"},
	}
	if err := p.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, existed, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after save failed: %v", err)
	}
	if !existed {
		t.Error("LoadFrom did not see the saved file")
	}
	if !reflect.DeepEqual(loaded, p) {
		t.Errorf("loaded preferences differ: %+v", loaded)
	}
}
