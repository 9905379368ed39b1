package config

import (
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"catalog":        {configKindString, "where the catalog gets fetched from"},
	"projectsdir":    {configKindString, "directory projects get cloned into"},
	"noninteractive": {configKindBool, "never ask questions, take the safe default"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
