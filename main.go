package main

import "github.com/resonara/resonara_backend/cmd"

func main() {
	cmd.Execute()
}
