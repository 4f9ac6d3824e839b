package main

import (
	"github.com/mhuber/bvv-alert/internal/cli"
)

func main() {
	cli.Execute()
}
