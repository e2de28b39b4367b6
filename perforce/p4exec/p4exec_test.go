package p4exec

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	got := Args(Opts{}, []string{"where", "//depot/a"})
	assert.Equal(t, []string{"-G", "where", "//depot/a"}, got)

	opts := Opts{Port: "ssl:p4:1666", User: "u1", Client: "ws1", Charset: "utf8"}
	got = Args(opts, []string{"where", "a.txt"})
	assert.Equal(t, []string{"-G", "-p", "ssl:p4:1666", "-u", "u1", "-c", "ws1", "-C", "utf8", "where", "a.txt"}, got)
}

func TestCommandDefault(t *testing.T) {
	assert.Equal(t, "p4", Opts{}.command())
	assert.Equal(t, "/opt/p4", Opts{P4Command: "/opt/p4"}.command())
}

func TestExecStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses echo")
	}
	// echo prints its arguments which lets us check what would be passed to p4
	out, err := Exec(context.Background(), Opts{P4Command: "echo", Client: "ws"}, []string{"where", "a"})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "-G -c ws where a\n", string(out))
}

func TestExecFailure(t *testing.T) {
	_, err := Exec(context.Background(), Opts{P4Command: "p4-command-that-does-not-exist"}, []string{"where"})
	assert.Error(t, err)
}
