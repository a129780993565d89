// Package mmio reads and writes dense vectors and matrices in the
// Matrix-Market array format: a "%%MatrixMarket matrix array ... general"
// header, optional "%" comment lines, a size line, and then one value per
// line in row-major order.
//
// This is the file-format boundary used by the cmd/ CLIs; nothing in the
// core packages performs I/O directly.
package mmio
