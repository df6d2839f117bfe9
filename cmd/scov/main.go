// cmd/scov/main.go
package main

import (
	"github.com/RPINerd/SimpleCoverage/internal/app"
	"github.com/RPINerd/SimpleCoverage/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
