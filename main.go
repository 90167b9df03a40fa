package main

import "github.com/mouse-blink/disksort/cmd"

func main() {
	cmd.Execute()
}
