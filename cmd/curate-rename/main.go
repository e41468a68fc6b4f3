// cmd/curate-rename/main.go
package main

import (
	"curate/internal/appshell"
	"curate/internal/renameapp"
)

func main() {
	appshell.Main(renameapp.RunContext)
}
