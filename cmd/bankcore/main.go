package main

import "github.com/aalvaropc/bankcore/internal/cli"

func main() {
	cli.Execute()
}
