// Command safemocker runs declarative pipeline scenarios through the
// safe-action test double. See internal/cli for the command tree.
package main

import (
	"os"

	"github.com/Priya28092000/safemocker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
