package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter forwards the output of chi's DefaultLogFormatter to logrus at debug level
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	msg := strings.TrimRight(fmt.Sprint(a...), "\r\n")
	logrus.Debug(msg)
}
