package main

import "github.com/MrRedFox1223/wdash/cmd"

func main() {
	cmd.Execute()
}
