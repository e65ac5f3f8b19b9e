package main

import (
	"errors"
	"fmt"
	"os"

	clientCmd "github.com/goto/chronoset/client/cmd"
	lerrors "github.com/goto/chronoset/client/local/errors"
)

var errRequestFail = errors.New("🔥 unable to complete request successfully")

//nolint:forbidigo
func main() {
	command := clientCmd.New()

	if err := command.Execute(); err != nil {
		fmt.Println(errRequestFail)
		Exit(err)
	}
}

func Exit(err error) {
	os.Exit(lerrors.ExitCodeOf(err))
}
