// Stellium renders astrology chart documents from SVG markup.
package main

import "github.com/stellium-labs/stellium-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
