package main

import "github.com/castdeck/castdeck/cmd"

func main() {
	cmd.Execute()
}
