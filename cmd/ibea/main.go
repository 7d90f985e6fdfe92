package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/ibea/cmd/ibea/app"
)

func main() {
	command := app.NewIBEACommand()
	err := command.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
