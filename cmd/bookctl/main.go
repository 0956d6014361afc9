// Command bookctl is a terminal client for the book catalog API. It shares
// the session, access layer and screen logic of the web client and keeps
// its credentials in a YAML file under the user's config directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(&env{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		os.Exit(1)
	}
}
