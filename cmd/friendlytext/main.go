package main

import "friendlytext/internal/cli"

func main() {
	cli.Execute()
}
