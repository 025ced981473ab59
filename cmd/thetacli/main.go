package main

import "github.com/thetatoken/checkpoints/cmd/thetacli/cmd"

func main() {
	cmd.Execute()
}
