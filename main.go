package main

import "beenama/cmd"

func main() {
	cmd.Execute()
}
