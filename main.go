package main

import "template-verifier/cmd"

func main() {
	cmd.Execute()
}
