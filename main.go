package main

import "waymark/cmd"

func main() {
	cmd.Execute()
}
