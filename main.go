package main

import (
	"github.com/hhubb22/kea-conf-generate/genmain"
)

func main() {
	genmain.Run()
}
