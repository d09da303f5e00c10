package main

import "music-catalog/cmd"

func main() {
	cmd.Execute()
}
