package main

import "github.com/profdoc/profdoc/cmd"

func main() {
	cmd.Execute()
}
