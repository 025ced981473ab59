package main

import "github.com/thetatoken/checkpoints/cmd/thetacheckpoint/cmd"

func main() {
	cmd.Execute()
}
