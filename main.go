package main

import "github.com/KaramelBytes/pollnorm-cli/cmd"

func main() {
	cmd.Execute()
}
