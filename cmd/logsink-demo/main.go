// Command logsink-demo drives a single shared log sink from the main goroutine
// and from a pool of workers.
//
// # Usage
//
//	logsink-demo [flags] [destinationPath]
//
// The process always exits 0.
package main

import (
	"fmt"
	"os"

	"github.com/Station-Manager/logsink/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "logsink-demo: %v\n", err)
	}
}
