package main

import "github.com/KirkDiggler/duel-arena/cmd/arena/cmd"

func main() {
	cmd.Execute()
}
