package main

import "spa-admin/cmd"

func main() {
	cmd.Execute()
}
