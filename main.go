package main

import "github.com/Tiliavir/trivial-payroll/cmd"

func main() {
	cmd.Execute()
}
