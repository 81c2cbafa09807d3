package main

import "daylist/cmd/daylist/root"

func main() {
	root.Execute()
}
