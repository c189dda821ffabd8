// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

// Package libfinder locates shared libraries on POSIX systems.
//
// Given a bare library name like "m" it resolves the absolute path of
// the matching shared object file, e.g. "/lib/x86_64-linux-gnu/libm.so.6".
// Resolution tries a fixed sequence of strategies: the dynamic linker
// cache (ldconfig), a provoked C linker trace, and finally the current
// working directory. The first strategy that yields a path wins.
//
// It can also read the SONAME tag embedded in a shared library's
// dynamic section by means of objdump.
//
// All strategies work by spawning external tools and parsing their text
// output. The tools are invoked with a pinned C locale so the output
// format is stable across systems. A missing tool is never an error,
// just an inconclusive strategy.
package libfinder
