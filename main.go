package main

import (
	"github.com/videbar/kobo-highlights/internal/cli"
)

// Version information - set at build time via ldflags
var Version = "dev"

func main() {
	cli.Version = Version
	cli.Execute()
}
