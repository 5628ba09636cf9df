// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package remotescan

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/ssh"
)

const bundleSuffix = ".ofx.bundle"

// Node is a live SSH connection to one render-farm node.
type Node struct {
	config Configuration
	client *ssh.Client
}

// Dial connects to the node named by c. The caller must Close the
// returned Node once done with it.
func Dial(ctx context.Context, c Configuration) (*Node, error) {
	sshConfig, err := clientConfig(c)
	if err != nil {
		return nil, err
	}
	client, err := ssh.Dial("tcp", c.addr(), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("remotescan: dial %s (%s): %w", c.Name, c.addr(), err)
	}
	return &Node{config: c, client: client}, nil
}

// Close closes the underlying SSH connection.
func (n *Node) Close() error {
	return n.client.Close()
}

func (n *Node) run(cmd string) (string, error) {
	session, err := n.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("remotescan: new session on %s: %w", n.config.Name, err)
	}
	defer session.Close()

	var out bytes.Buffer
	session.Stdout = &out
	if err := session.Run(cmd); err != nil {
		return "", fmt.Errorf("remotescan: %s: %q: %w", n.config.Name, cmd, err)
	}
	return out.String(), nil
}

// ScanBundles lists the bundle directories found under envVar's colon-
// separated search paths on the node, mirroring
// plugincache.ScanBundles/SearchPaths' local shape (spec §4.D) but reading
// the remote shell's environment and directory tree instead of the local
// one. A directory ending in bundleSuffix is never descended into further;
// a bundle never nests another bundle.
func (n *Node) ScanBundles(envVar string) ([]string, error) {
	cmd := fmt.Sprintf(
		`for d in $(echo "$%s" | tr ':' '\n'); do [ -n "$d" ] && find "$d" -type d -name '*%s' -prune; done`,
		envVar, bundleSuffix,
	)
	out, err := n.run(cmd)
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

// ResolveBinary returns the per-arch binary path for bundleDir, trying
// n.config.RemoteArchDirs in order and returning the first one the remote
// shell reports existing (spec §4.D/§6: "<bundle>/Contents/<arch>/<basename>").
func (n *Node) ResolveBinary(bundleDir string) (path string, ok bool, err error) {
	base := strings.TrimSuffix(bundleBasename(bundleDir), bundleSuffix)
	for _, arch := range n.config.RemoteArchDirs {
		candidate := bundleDir + "/Contents/" + arch + "/" + base
		out, runErr := n.run(fmt.Sprintf("test -e %s && echo yes || echo no", shellQuote(candidate)))
		if runErr != nil {
			return "", false, runErr
		}
		if strings.TrimSpace(out) == "yes" {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// Signature reads the remote (mtime, size) pair for path, in the same
// units binloader.Binary.Stat records locally (unix nanoseconds, bytes),
// so the result can be handed straight to binloader.Binary.SetSignature
// when the bundle tree is reachable at an identical path locally (the
// common render-farm case: shared network storage, SSH used only to read
// the node's own view of the tree rather than to transfer bytes).
func (n *Node) Signature(path string) (mtime, size int64, err error) {
	out, err := n.run(fmt.Sprintf("stat -c '%%Y %%s' %s", shellQuote(path)))
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("remotescan: unexpected stat output %q for %s", out, path)
	}
	seconds, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("remotescan: parsing mtime from %q: %w", out, err)
	}
	size, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("remotescan: parsing size from %q: %w", out, err)
	}
	return seconds * 1e9, size, nil
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func bundleBasename(bundleDir string) string {
	if i := strings.LastIndex(bundleDir, "/"); i >= 0 {
		return bundleDir[i+1:]
	}
	return bundleDir
}

// shellQuote wraps s in single quotes for safe interpolation into a remote
// shell command line, escaping any single quote already in s.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
