package main

import "pip-doctor/internal/cli"

func main() {
	cli.Execute()
}
