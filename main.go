package main

import "go-emotive/cmd"

func main() {
	cmd.Execute()
}
