package main

import (
	"github.com/iqrbr/iqr/pkg/cli"
)

func main() {
	cli.Execute()
}
