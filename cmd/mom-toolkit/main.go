package main

import "mom-toolkit/cmd"

func main() {
	cmd.Execute()
}
