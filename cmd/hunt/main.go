// cmd/hunt/main.go
package main

import (
	"motifhunt/internal/app"
	"motifhunt/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
