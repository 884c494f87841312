package main

import "github.com/repolens/repolens/cmd"

func main() {
	cmd.Execute()
}
