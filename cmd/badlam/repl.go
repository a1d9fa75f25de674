package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/badlam/internal/config"
)

const prompt = "> "

// repl evaluates one line at a time on the session's evaluator until EOF.
// The call stack is never reset, so frames left by failed lines show up
// in later tracebacks.
func repl(sess *session, in io.Reader, out io.Writer) int {
	fmt.Fprintf(out, "%s %s REPL\n", config.ProgName, config.Version)
	fmt.Fprintln(out, "Send EOF (Ctrl-D on Linux, Ctrl-Z on Windows) to exit the REPL")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			sess.logger.Debug("EOF is sent")
			return 0
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		sess.runSource(line, "")
	}
}
