package main

import "testing"

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("HEALTHCHECKS_LOG_DIR", t.TempDir())
	t.Setenv("HEALTHCHECKS_LOG_LEVEL", "info")

	cases := []struct {
		args []string
		want int
	}{
		{[]string{"--help"}, 0},
		{[]string{"--no-such-flag"}, 2},
		{[]string{"version"}, 0},
		{[]string{"frobnicate"}, 1},
		{[]string{}, 1},
		{[]string{"--log-level", "loud", "version"}, 1},
	}
	for _, c := range cases {
		if got := run(c.args); got != c.want {
			t.Fatalf("run(%v) = %d, want %d", c.args, got, c.want)
		}
	}
}
