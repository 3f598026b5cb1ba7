// mazeview — terminal viewer for gridworld benchmark datasets.
//
// Usage:
//
//	mazeview [command]
//
// Commands:
//
//	browse    Open the interactive viewer (default)
//	serve     Serve a local asset directory over HTTP
//	inspect   Fetch and print a published document
//	version   Print version information
package main

import (
	"os"

	"github.com/mazeview/mazeview/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
