/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/tgg/cmd/tgg/cmd"

func main() {
	cmd.Execute()
}
