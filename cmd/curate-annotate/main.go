// cmd/curate-annotate/main.go
package main

import (
	"curate/internal/annotateapp"
	"curate/internal/appshell"
)

func main() {
	appshell.Main(annotateapp.RunContext)
}
