package main

import "github.com/josephlewis42/labshell/cmd"

func main() {
	cmd.Execute()
}
