package main

import "github.com/hamao0820/daily-akari-solver/cmd"

func main() {
	cmd.Execute()
}
