package main

import (
	"os"

	sharedcmd "github.com/msgstore/deployer/cmd"
	"github.com/msgstore/deployer/cmd/update-message/cmd"
	"github.com/msgstore/deployer/pkg/client/wasm"
)

func main() {
	os.Exit(sharedcmd.Execute(cmd.NewUpdateMessageCmd(wasm.NewDialer())))
}
