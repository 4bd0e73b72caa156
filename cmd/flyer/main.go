// Command flyer generates property flyers as PDF.
package main

import "github.com/tsawler/flyer/internal/cli"

func main() {
	cli.Execute()
}
