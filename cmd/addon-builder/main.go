package main

import "github.com/oshokin/addon-builder/cmd/addon-builder/cmd"

func main() {
	cmd.Execute()
}
