package main

import "github.com/KostasZigo/commitlint/cmd"

func main() {
	cmd.Execute()
}
