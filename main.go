package main

import "github.com/jakditstudio/coloGAMA/cmd"

func main() {
	cmd.Execute()
}
