package main

import (
	"net/http"

	"github.com/code-relay-cli/code-relay/cmd"
	"github.com/code-relay-cli/code-relay/internals/ownhttp"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {

	// replace default http client
	http.DefaultClient = ownhttp.New()

	cmd.Version = version
	cmd.Commit = commit
	cmd.Execute()
}
