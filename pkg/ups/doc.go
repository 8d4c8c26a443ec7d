// Package ups provides application of UPS-format binary patches. A UPS patch
// encodes a whole-file binary delta as a fixed header, a body of copy/XOR
// records, and three trailing CRC-32 checksums covering the source file, the
// target file, and the patch itself. Parsing functionality is provided by the
// Parse function and patch application is provided by the ApplyPatch and
// ApplyPatchWith functions. Patch creation is not supported.
package ups
