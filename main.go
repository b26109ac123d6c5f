package main

import "github.com/Karotoka/ERC-7521/cmd"

func main() {
	cmd.Execute()
}
