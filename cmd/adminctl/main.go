package main

import "github.com/dmitrijs2005/battleapi/internal/adminctl"

func main() {
	adminctl.Main()
}
