package main

import "defterm/internal/cli"

func main() {
	cli.Execute()
}
