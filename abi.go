// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"strconv"

	"golang.org/x/sys/unix"
)

type abiKey struct {
	machine  string
	wordSize int
}

// abiTags maps machine type and native word size to the ABI descriptor
// ldconfig prints for libraries of that class. Collected from GLIBC's
// ldconfig output on the respective platforms.
var abiTags = map[abiKey]string{
	{"x86_64", 8}:  "libc6,x86-64",
	{"ppc64", 8}:   "libc6,64bit",
	{"sparc64", 8}: "libc6,64bit",
	{"s390x", 8}:   "libc6,64bit",
	{"ia64", 8}:    "libc6,IA-64",
}

const abiTagDefault = "libc6"

// abiTagFor returns the ABI descriptor for the given machine type and
// word size in bytes. Unknown combinations get the generic tag.
func abiTagFor(machine string, wordSize int) string {
	tag, exists := abiTags[abiKey{machine, wordSize}]
	if !exists {
		return abiTagDefault
	}

	return tag
}

// hostABITag returns the ABI descriptor of the running system. It is
// used purely as a text anchor to pick the matching architecture
// variant from multi-arch ldconfig listings.
func hostABITag() string {
	return abiTagFor(machineType(), strconv.IntSize/8)
}

func machineType() string {
	var uts unix.Utsname

	err := unix.Uname(&uts)
	if err != nil {
		return ""
	}

	return unix.ByteSliceToString(uts.Machine[:])
}
