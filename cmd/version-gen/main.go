// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command version-gen generates version artifacts (version.json, version.js,
// version.txt, ...) describing the git state of a project at build time.
//
// Build metadata of the binary itself is injected with linker flags:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildDate=... -X main.buildCommit=..."
package main

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	execute()
}
