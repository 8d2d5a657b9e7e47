package main

import "github.com/danmuck/calckit/internal/cli"

func main() {
	cli.Execute()
}
