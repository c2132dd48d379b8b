package main

import "github.com/listique/client/cmd/app/cmd"

func main() {
	cmd.Execute()
}
