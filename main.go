package main

import "github.com/square360/pantheon-workflows/cmd"

func main() {
	cmd.Execute()
}
