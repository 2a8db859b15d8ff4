//go:build !linux

package sem

func newKernelSem() kernelSem {
	return newCondSem()
}
