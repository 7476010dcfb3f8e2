package main

import "datakeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
