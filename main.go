package main

import "github.com/orbit-sync/orbitspec/cmd"

func main() {
	cmd.Execute()
}
