// cmd/annonex2embl/main.go
package main

import (
	"os"

	"annonex2embl/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
