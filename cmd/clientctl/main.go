// clientctl заводит и удаляет OAuth-клиентов напрямую в БД сервиса.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openAdmin).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
