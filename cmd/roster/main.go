package main

import "github.com/cmlabs-hris/staff-roster-go/internal/cli"

func main() {
	cli.Execute()
}
