package main

import "github.com/ZeiZel/self-hosted/cmd"

func main() {
	cmd.Execute()
}
