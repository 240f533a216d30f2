package main

import "cargoline/app/cli"

func main() {
	cli.Execute()
}
