package main

import "seedbox-mover/cmd"

func main() {
	cmd.Execute()
}
