package main

import "github.com/nandemo-ya/gluemodel/internal/cmd"

func main() {
	cmd.Execute()
}
