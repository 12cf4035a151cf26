// Jornada - Work Journey Analysis Tool
//
// Jornada reconstructs work journeys from timestamped chat exports. The
// first and last message of each day become the entry and exit records,
// from which it computes overtime hours, overtime cost, night surcharge
// and weekly aggregates.
package main

import (
	"os"

	"github.com/ponto-labs/jornada/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
