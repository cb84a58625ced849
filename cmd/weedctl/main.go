// Command weedctl is a small operator tool for a SeaweedFS-style cluster:
// it assigns file ids, uploads and downloads objects, and deletes them,
// using the client packages of this module.
package main

import "github.com/dreamware/seaweed/cmd/weedctl/cmd"

func main() {
	cmd.Execute()
}
