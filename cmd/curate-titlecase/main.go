// cmd/curate-titlecase/main.go
package main

import (
	"curate/internal/appshell"
	"curate/internal/caseapp"
)

func main() {
	appshell.Main(caseapp.RunContext)
}
