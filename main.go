package main

import "github.com/KostasZigo/gitodb/cmd"

func main() {
	cmd.Execute()
}
