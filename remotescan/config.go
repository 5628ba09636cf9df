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

// Package remotescan extends plug-in discovery to render-farm nodes that
// keep an identical .ofx.bundle tree on shared storage: a farm controller
// stats and lists the tree through one representative node over SSH rather
// than re-describing every binary on every worker. This package only lists
// bundles, resolves binaries and reads signatures; plugincache.Cache.Reconcile
// takes no remote input and scans only local search paths.
package remotescan

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Configuration names one render-farm node to scan.
type Configuration struct {
	Name string
	Host string
	Port int
	User string

	// Keyfile, if set, is an unencrypted private key file tried before
	// falling back to a running SSH agent.
	Keyfile string
	// KnownHosts is the known_hosts file used to verify the node's host
	// key. Required: remotescan never dials with InsecureIgnoreHostKey.
	KnownHosts string

	// RemoteArchDirs are the bundle architecture directory names to look
	// for under this node (spec §4.D/§6's <bundle>/Contents/<arch>
	// convention), in priority order. Unlike a local scan, the node's
	// GOOS/GOARCH cannot be read from the local runtime package, so the
	// caller must name them explicitly.
	RemoteArchDirs []string
}

func (c Configuration) addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getSSHAgent returns a connection to a local SSH agent, if one exists.
func getSSHAgent() ssh.AuthMethod {
	conn, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
	if err != nil {
		return nil
	}
	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers)
}

func getPrivateKeyAuth(path string) (ssh.AuthMethod, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	signer, err := ssh.ParsePrivateKey(b)
	if err != nil {
		return nil, err
	}
	return ssh.PublicKeys(signer), nil
}

func clientConfig(c Configuration) (*ssh.ClientConfig, error) {
	var auths []ssh.AuthMethod
	if c.Keyfile != "" {
		if auth, err := getPrivateKeyAuth(c.Keyfile); err == nil {
			auths = append(auths, auth)
		}
	}
	if a := getSSHAgent(); a != nil {
		auths = append(auths, a)
	}
	if len(auths) == 0 {
		return nil, fmt.Errorf("remotescan: no usable SSH authentication method for %s", c.Name)
	}

	hostKeyCallback, err := knownhosts.New(c.KnownHosts)
	if err != nil {
		return nil, fmt.Errorf("remotescan: reading known_hosts %s: %w", c.KnownHosts, err)
	}

	return &ssh.ClientConfig{
		User:            c.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCallback,
	}, nil
}
