// cmd/zamgas/main.go
package main

import "github.com/zamgas/zamgas-client/internal/cli"

func main() {
	cli.Execute()
}
