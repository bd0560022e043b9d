package main

import (
	"github.com/lectio-cli/lectio/cmd"
)

func main() {
	cmd.Execute()
}
