package main

import "github.com/KaramelBytes/csvtally/cmd"

func main() {
	cmd.Execute()
}
