package main

import (
	"litestore/cmd"
)

func main() {
	cmd.Execute()
}
