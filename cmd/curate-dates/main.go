// cmd/curate-dates/main.go
package main

import (
	"curate/internal/appshell"
	"curate/internal/datesapp"
)

func main() {
	appshell.Main(datesapp.RunContext)
}
