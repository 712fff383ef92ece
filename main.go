/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/samwightt/actiongen/cmd"

func main() {
	cmd.Execute()
}
