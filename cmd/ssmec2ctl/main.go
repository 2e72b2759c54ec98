// Command ssmec2ctl checks a stack configuration and previews what the stack
// would generate, without touching AWS unless asked to.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
