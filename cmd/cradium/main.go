package main

import "cradium/internal/adapter/cli"

func main() {
	cli.Execute()
}
