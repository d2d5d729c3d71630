package main

import "voicebox/internal/cli"

func main() {
	cli.Execute()
}
