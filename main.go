package main

import "projctl/internal/cli"

func main() {
	cli.Execute()
}
