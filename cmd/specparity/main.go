// Command specparity checks that unified OpenAPI documents carry exactly the
// paths of the standalone versioned documents they were merged from.
package main

import (
	"os"

	"github.com/erraggy/specparity/cmd/specparity/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
