package main

import "github.com/unihub/cli/internal/cmd"

func main() {
	cmd.Execute()
}
