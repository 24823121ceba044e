// Package main is the ino2ubi command line launcher.
//
// It converts a single Arduino sketch (.ino) into an FLProg user-block
// document (.ubi). The launcher owns all I/O and presentation concerns:
// reading the sketch, loading role/alias overrides, writing the UTF-16
// output, and the optional update check. The conversion itself is the pure
// analyzer + serializer pipeline in internal/convert.
//
// Usage:
//
//	# Minimal: block named after the sketch file, output next to it
//	ino2ubi -i blink.ino
//
//	# Explicit metadata and output path
//	ino2ubi -i blink.ino -o blocks/Blink.ubi -n Blink -d "LED blinker"
//
//	# Role/alias overrides from a YAML file, En input enabled
//	ino2ubi -i blink.ino -overrides roles.yaml -enable-input
//
// Exit status is 0 on success and non-zero when the input file is missing,
// the block name resolves empty, or the output cannot be written. A sketch
// with no recognized declarations converts with a warning.
//
// Configuration (environment):
//   - INO2UBI_LOG_LEVEL, INO2UBI_LOG_DEV, INO2UBI_LOG_FILE
//   - INO2UBI_UPDATE_CHECK, INO2UBI_UPDATE_URL, INO2UBI_UPDATE_TIMEOUT
//   - INO2UBI_BLOCK_VERSION
package main
