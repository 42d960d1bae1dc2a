package main

import (
	"github.com/dakota-kosiorek/de-novo-assembler/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
