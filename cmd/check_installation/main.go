// Command check_installation verifies a MoM server tree and prints a
// PASS/FAIL checklist.
package main

import "mom-toolkit/cmd"

func main() {
	c := cmd.NewVerifyCmd()
	c.Use = "check_installation"
	cmd.ExecuteCommand(c)
}
