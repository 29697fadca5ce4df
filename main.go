package main

import (
	"github.com/iburimskiy/heartclock/internal/app"
	"github.com/iburimskiy/heartclock/internal/cli"
)

func main() {
	cli.Execute(app.RunWindow)
}
