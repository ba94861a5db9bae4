// Package terminal maps colors onto terminal capabilities.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Color mode detection from COLORTERM, TERM and emulator variables
//   - Nearest xterm-256 index lookup over the 6x6x6 cube and grayscale ramp
//   - SGR escape sequences and background swatches
//
// Sequences are plain ANSI; terminfo/termcap is not consulted.
package terminal
