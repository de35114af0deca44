package main

import "github.com/abuelosolos/Fara/internal/cli"

func main() {
	cli.Execute()
}
