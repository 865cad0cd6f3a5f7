// SPDX-License-Identifier: MIT
// Command campusnav finds a building where two people on campus can meet and
// the walking route each of them takes to get there.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
