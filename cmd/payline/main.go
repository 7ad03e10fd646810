package main

import "github.com/payline-systems/payline/internal/cli"

func main() {
	cli.Execute()
}
