package main

import "github.com/davidpeckham/vin/cmd/vin/cmd"

func main() {
	cmd.Execute()
}
