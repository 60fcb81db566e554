package main

import "github.com/Mariembenjaballah1/PFE-mern-sub001/cmd"

func main() {
	cmd.Execute()
}
