package main

import "github.com/alexiusacademia/gosas/cmd"

func main() {
	cmd.Execute()
}
