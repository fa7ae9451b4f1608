// Command translate is the offline companion of the translation server.
package main

import (
	"os"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
