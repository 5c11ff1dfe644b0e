// urpx converts URPX robot-program project files into executable
// robot scripts or human-readable program outlines.
//
// Usage:
//
//	# Convert files into the current directory as .script output
//	urpx convert cell1.urpx cell2.urpx
//
//	# Convert to indented text outlines into a chosen directory
//	urpx convert --mode txt --out ./converted cell1.urpx
//
//	# Run the HTTP conversion service
//	urpx serve --config config.yaml
//
//	# Show version information
//	urpx version
package main

import "github.com/joho/godotenv"

func main() {
	_ = godotenv.Load()
	Execute()
}
