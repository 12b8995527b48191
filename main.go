package main

import (
	"frascal/cmd"
	"os"
)

func main() {
	os.Exit(cmd.Execute())
}
