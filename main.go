/*
Copyright © 2025 TaskQueue Authors
*/
package main

import "github.com/taskqueue/taskqueue-go/cmd"

func main() {
	cmd.Execute()
}
