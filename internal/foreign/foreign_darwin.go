//go:build darwin && (amd64 || arm64)

package foreign

const libcName = "/usr/lib/libSystem.B.dylib"
