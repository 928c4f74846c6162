// Command extract_from_client copies the server files out of a MoM client
// installation.
package main

import "mom-toolkit/cmd"

func main() {
	c := cmd.NewExtractCmd()
	c.Use = "extract_from_client"
	cmd.ExecuteCommand(c)
}
