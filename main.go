package main

import "github.com/ethanolivertroy/scan2manifest/cmd"

func main() {
	cmd.Execute()
}
