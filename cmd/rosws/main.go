package main

import "rosws/internal/cli"

func main() {
	cli.Execute()
}
