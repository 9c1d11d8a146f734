//go:build linux && (amd64 || arm64)

package foreign

const libcName = "libc.so.6"
