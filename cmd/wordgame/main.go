package main

import "github.com/mikepoirier/word-game/internal/cli"

func main() {
	cli.Execute()
}
