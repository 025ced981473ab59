package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	isatty "github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/ybbus/jsonrpc"
)

var (
	osExit = os.Exit
	exit   = os.Exit
)

// Error prints the message, in red on a terminal, and exits.
func Error(msg string, args ...interface{}) {
	out := fmt.Sprintf(msg, args...)
	if outputIsTty() {
		out = ansi.Color(out, "red")
	}
	fmt.Fprint(os.Stderr, out)
	exit(1)
}

func outputIsTty() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// Call invokes the RPC method on the configured endpoint and returns the
// pretty printed result.
func Call(method string, args interface{}) (string, error) {
	timeout := time.Duration(viper.GetInt(CfgRemoteRPCTimeoutSecs)) * time.Second
	client := jsonrpc.NewRPCClient(viper.GetString(CfgRemoteRPCEndpoint))
	client.SetHTTPClient(&http.Client{Timeout: timeout})

	res, err := client.Call(method, args)
	if err != nil {
		return "", errors.Wrapf(err, "failed to call %s", method)
	}
	if res.Error != nil {
		return "", errors.Errorf("%s failed: %v", method, res.Error)
	}
	formatted, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		return "", errors.Wrap(err, "failed to parse server response")
	}
	return string(formatted), nil
}
