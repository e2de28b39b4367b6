// Package p4exec runs the p4 command line client in -G mode and captures its output.
package p4exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const defaultCommand = "p4"

type Opts struct {
	// P4Command is the client binary. Defaults to p4.
	P4Command string
	// Port, User, Client and Charset are passed as global flags when set.
	// When empty p4 falls back to P4PORT, P4USER, P4CLIENT and P4CHARSET.
	Port    string
	User    string
	Client  string
	Charset string
	// Dir is the working directory for the command, relative local paths resolve against it.
	Dir string
	// Stderr receives the client stderr. Defaults to os.Stderr.
	Stderr io.Writer
}

func (s Opts) command() string {
	if s.P4Command == "" {
		return defaultCommand
	}
	return s.P4Command
}

// Args returns the full argument list, -G and global flags followed by args.
func Args(opts Opts, args []string) []string {
	res := []string{"-G"}
	add := func(flag, v string) {
		if v != "" {
			res = append(res, flag, v)
		}
	}
	add("-p", opts.Port)
	add("-u", opts.User)
	add("-c", opts.Client)
	add("-C", opts.Charset)
	return append(res, args...)
}

// Exec runs p4 with args and returns everything written to stdout.
func Exec(ctx context.Context, opts Opts, args []string) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := ExecIntoWriter(ctx, buf, opts, args)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExecIntoWriter(ctx context.Context, wr io.Writer, opts Opts, args []string) error {
	c := exec.CommandContext(ctx, opts.command(), Args(opts, args)...)
	c.Dir = opts.Dir
	c.Stderr = opts.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	c.Stdout = wr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed executing p4 command %v: %w", args, err)
	}
	return nil
}

// Where runs p4 -G where for paths. The output has one record per path.
func Where(ctx context.Context, opts Opts, paths ...string) ([]byte, error) {
	return Exec(ctx, opts, append([]string{"where"}, paths...))
}
