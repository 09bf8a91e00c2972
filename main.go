package main

import "kumoov/cmd"

func main() {
	cmd.Execute()
}
