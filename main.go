package main

import "github.com/Adi-cmrec/lenslink/cmd"

func main() {
	cmd.Execute()
}
