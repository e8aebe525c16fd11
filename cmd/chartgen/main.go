package main

import "github.com/k3scfg/chartgen/pkg/cli"

func main() {
	cli.Execute()
}
