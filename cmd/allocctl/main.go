// Command allocctl exercises the skip-list allocator against a host-backed
// arena standing in for the embedded target's SRAM, for benchmarking and
// interactive poking at the free structure without a device attached.
package main

func main() {
	execute()
}
