/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/elite-arena/apiserver/cmd"

func main() {
	cmd.Execute()
}
