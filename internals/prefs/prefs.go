// Package prefs stores what languages and frameworks the user wants
// to see, and classifies catalog entries against that
package prefs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/code-relay-cli/code-relay/internals/catalog"
	"github.com/code-relay-cli/code-relay/internals/utils"
)

// Preferences is the content of the coderelay.json preferences file.
// Tags are in an ID-ish format based on the full name
// (eg. Tailwind CSS > tailwindcss)
type Preferences struct {
	Languages          []string `json:"languages"`
	Frameworks         []string `json:"frameworks"`
	ExcludedFrameworks []string `json:"excluded_frameworks"`
}

// Default returns empty preferences, the state right after the first run
func Default() *Preferences {
	return &Preferences{
		Languages:          []string{},
		Frameworks:         []string{},
		ExcludedFrameworks: []string{},
	}
}

// Path returns the location of the preferences file
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "coderelay", "coderelay.json"), nil
}

// Load reads the preferences file. The second return value tells
// whether the file existed, callers use that to nudge the user towards
// `coderelay prefs` on first run
func Load() (*Preferences, bool, error) {
	path, err := Path()
	if err != nil {
		return nil, false, err
	}
	return LoadFrom(path)
}

// LoadFrom reads preferences from the given file
func LoadFrom(path string) (*Preferences, bool, error) {
	prefs := Default()
	err := utils.ReadJSONFile(path, prefs)
	if os.IsNotExist(err) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return prefs, true, nil
}

// Save writes the preferences to their default location
func (p *Preferences) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return p.SaveTo(path)
}

// SaveTo writes the preferences to the given file
func (p *Preferences) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return utils.WriteJSONFile(path, p)
}

// NormalizeTag turns a display name into the tag format used here
// (eg. "Tailwind CSS" becomes "tailwindcss")
func NormalizeTag(name string) string {
	return strings.ReplaceAll(strcase.KebabCase(name), "-", "")
}

// AddLanguage records a language. The name gets normalized, full
// display names are fine. Returns false when it was already there
func (p *Preferences) AddLanguage(name string) bool {
	return appendTag(&p.Languages, name)
}

// AddFramework records a framework the user wants to see
func (p *Preferences) AddFramework(name string) bool {
	return appendTag(&p.Frameworks, name)
}

// ExcludeFramework records a framework the user never wants to see
func (p *Preferences) ExcludeFramework(name string) bool {
	return appendTag(&p.ExcludedFrameworks, name)
}

func appendTag(list *[]string, name string) bool {
	tag := NormalizeTag(name)
	if contains(*list, tag) {
		return false
	}
	*list = append(*list, tag)
	return true
}

// Match classifies an entry against the preferences. An unknown
// language always wins, an excluded framework beats an unknown one
func (p *Preferences) Match(entry *catalog.Entry) MatchKind {
	for _, lang := range entry.Languages {
		if !contains(p.Languages, lang) {
			return MatchNewLanguage
		}
	}

	match := MatchGood
	for _, framework := range entry.Frameworks {
		if contains(p.ExcludedFrameworks, framework) {
			return MatchExcludedFramework
		}
		if !contains(p.Frameworks, framework) {
			match = MatchNewFramework
		}
	}
	return match
}

func contains(list []string, s string) bool {
	for _, el := range list {
		if el == s {
			return true
		}
	}
	return false
}

// MatchKind says how well an entry fits the preferences
type MatchKind int

const (
	MatchGood MatchKind = iota
	MatchNewFramework
	MatchExcludedFramework
	MatchNewLanguage
)

// Label returns the human readable classification
func (m MatchKind) Label() string {
	switch m {
	case MatchNewFramework:
		return "new framework"
	case MatchExcludedFramework:
		return "excluded framework"
	case MatchNewLanguage:
		return "new language"
	default:
		return "good match"
	}
}
