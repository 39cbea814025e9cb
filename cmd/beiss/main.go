package main

import (
	"github.com/ShafahmadxX69/BEISS/internal/cli"
)

func main() {
	cli.Execute()
}
