// Package main provides the entrypoint for webshell.
package main

func main() {
	Execute()
}
